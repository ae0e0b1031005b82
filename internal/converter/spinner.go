package converter

import (
	dto "lucky_spinner/internal/api/dto/spinner"
	"lucky_spinner/internal/model"
)

func ToOptionResponse(opt model.Option) dto.OptionResponse {
	return dto.OptionResponse{
		ID:     string(opt.ID),
		Text:   opt.Text,
		Active: opt.Active,
	}
}

func ToOptionsResponse(options []model.Option) dto.OptionsResponse {
	result := make([]dto.OptionResponse, len(options))
	active := 0
	for i, opt := range options {
		result[i] = ToOptionResponse(opt)
		if opt.Active {
			active++
		}
	}
	return dto.OptionsResponse{
		Options:     result,
		ActiveCount: active,
		TotalCount:  len(options),
	}
}

func ToAddOptionResponse(opt model.Option, added bool) dto.AddOptionResponse {
	if !added {
		return dto.AddOptionResponse{}
	}
	o := ToOptionResponse(opt)
	return dto.AddOptionResponse{Option: &o, Added: true}
}

func ToResultsResponse(results []model.Result) dto.ResultsResponse {
	out := make([]dto.ResultResponse, len(results))
	for i, r := range results {
		out[i] = dto.ResultResponse{
			ID:        string(r.ID),
			Text:      r.Text,
			Timestamp: r.Timestamp.Time().UnixMilli(),
		}
	}
	return dto.ResultsResponse{Results: out}
}

func ToSpinResponse(ticket model.SpinTicket) dto.SpinResponse {
	return dto.SpinResponse{
		Winner:        ToOptionResponse(ticket.Winner),
		Index:         ticket.Index,
		ActiveCount:   ticket.ActiveCount,
		ExtraSpins:    ticket.ExtraSpins,
		StartRotation: ticket.StartRotation,
		FinalRotation: ticket.FinalRotation,
		DurationMs:    ticket.Duration.Milliseconds(),
		StartedAt:     ticket.StartedAt.UnixMilli(),
	}
}

func ToWheelResponse(wheel model.Wheel) dto.WheelResponse {
	segments := make([]dto.SegmentResponse, len(wheel.Segments))
	for i, s := range wheel.Segments {
		segments[i] = dto.SegmentResponse{
			OptionID:   string(s.OptionID),
			Text:       s.Text,
			Label:      s.Label,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			Color:      s.Color,
		}
	}
	return dto.WheelResponse{
		Rotation:    wheel.State.Rotation,
		Spinning:    wheel.State.Spinning,
		Winner:      wheel.State.Winner,
		ShowWinner:  wheel.State.ShowWinner,
		Segments:    segments,
		ActiveCount: wheel.ActiveCount,
		TotalCount:  wheel.TotalCount,
		AllDone:     wheel.AllDone,
	}
}

func ToImportResponse(snapshot model.Snapshot) dto.ImportResponse {
	return dto.ImportResponse{
		Options: len(snapshot.Options),
		Results: len(snapshot.Results),
	}
}
