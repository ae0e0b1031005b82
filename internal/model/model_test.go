package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOptionID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    OptionID
		wantErr bool
	}{
		{"uuid string", `"3f1c2a9e-1111-4c7a-9b1e-000000000001"`, "3f1c2a9e-1111-4c7a-9b1e-000000000001", false},
		{"millisecond number", `1709287200000`, "1709287200000", false},
		{"fraction", `1.5`, "1.5", false},
		{"null", `null`, "", false},
		{"object", `{"id": 1}`, "", true},
		{"bool", `true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id OptionID
			err := json.Unmarshal([]byte(tt.in), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("id = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestResult_JSONIsFlat(t *testing.T) {
	at := time.UnixMilli(1709287260123)
	r := NewResult(Option{ID: "7", Text: "Sushi", Active: true}, at)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"7","text":"Sushi","active":true,"timestamp":1709287260123}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Option != r.Option || !back.Timestamp.Time().Equal(at) {
		t.Errorf("round trip changed the result: %+v", back)
	}
}

func TestTimestamp_AcceptsRFC3339(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-03-01T10:00:00Z"`), &ts); err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC); !ts.Time().Equal(want) {
		t.Errorf("got %v, want %v", ts.Time(), want)
	}
}

func TestNewResult_TruncatesToMillis(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)
	r := NewResult(Option{ID: "1"}, at)
	if got := r.Timestamp.Time().Nanosecond(); got != 123000000 {
		t.Errorf("nanoseconds = %d, want 123000000", got)
	}
}

func TestActiveOptions(t *testing.T) {
	options := []Option{
		{ID: "1", Text: "A", Active: true},
		{ID: "2", Text: "B", Active: false},
		{ID: "3", Text: "C", Active: true},
	}
	active := ActiveOptions(options)
	if len(active) != 2 || active[0].ID != "1" || active[1].ID != "3" {
		t.Errorf("unexpected active list %+v", active)
	}
	if got := CloneOptions(nil); got == nil || len(got) != 0 {
		t.Errorf("clone of nil must be an empty list, got %#v", got)
	}
}

func TestSpinTicket(t *testing.T) {
	settled := NewSpinTicket()
	settled.Settle()
	settled.Abandon()
	<-settled.Done()
	if settled.Abandoned() {
		t.Error("abandon after settle must be ignored")
	}

	abandoned := NewSpinTicket()
	abandoned.Abandon()
	abandoned.Settle()
	<-abandoned.Done()
	if !abandoned.Abandoned() {
		t.Error("expected abandoned ticket")
	}
}
