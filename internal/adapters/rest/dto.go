package rest

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/pkg/domain"
)

// Wire DTOs. Element payloads arrive as generic JSON objects and are
// decoded by their "type" tag, so the wire format stays open for hosts
// written in other languages.

type pointDTO struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

type lineDTO struct {
	First  *pointDTO `json:"first" mapstructure:"first"`
	Second *pointDTO `json:"second" mapstructure:"second"`
}

type arcDTO struct {
	Center      *pointDTO `json:"center" mapstructure:"center"`
	RadiusPoint *pointDTO `json:"radius_point" mapstructure:"radius_point"`
}

type snapshotDTO struct {
	Lines        []lineDTO `json:"lines"`
	Arcs         []arcDTO  `json:"arcs"`
	HistoryIndex int       `json:"history_index"`
}

type historyResultDTO struct {
	Applied      bool         `json:"applied"`
	Snapshot     *snapshotDTO `json:"snapshot,omitempty"`
	HistoryIndex int          `json:"history_index"`
}

type divisionRequest struct {
	Element   map[string]any `json:"element"`
	Divisions int            `json:"divisions"`
}

type divisionStatusDTO struct {
	kamon.DivisionStatus
	Points []pointDTO `json:"points"`
}

type pointerResultDTO struct {
	Hit   bool      `json:"hit"`
	Point *pointDTO `json:"point,omitempty"`
}

type eventDTO struct {
	Type         string `json:"type"`
	Kind         string `json:"kind,omitempty"`
	Applied      *bool  `json:"applied,omitempty"`
	HistoryIndex int    `json:"history_index"`
}

// decodeElement builds a domain element from a generic payload,
// dispatching on the "type" tag. Missing points yield a partially
// constructed element; completeness is enforced by the operation that
// consumes it.
func decodeElement(raw map[string]any) (domain.Element, error) {
	kind, _ := raw["type"].(string)

	switch domain.ElementKind(kind) {
	case domain.KindLine:
		var dto lineDTO
		if err := mapstructure.Decode(raw, &dto); err != nil {
			return domain.Element{}, fmt.Errorf("decode line payload: %w", err)
		}
		l := domain.NewLine()
		if dto.First != nil {
			l.SetFirstPoint(dto.First.X, dto.First.Y)
		}
		if dto.Second != nil {
			l.SetSecondPoint(dto.Second.X, dto.Second.Y)
		}
		return domain.LineElement(l), nil

	case domain.KindArc:
		var dto arcDTO
		if err := mapstructure.Decode(raw, &dto); err != nil {
			return domain.Element{}, fmt.Errorf("decode arc payload: %w", err)
		}
		a := domain.NewCompassArc()
		if dto.Center != nil {
			a.SetCenter(dto.Center.X, dto.Center.Y)
		}
		if dto.RadiusPoint != nil {
			a.SetRadiusPoint(dto.RadiusPoint.X, dto.RadiusPoint.Y)
		}
		return domain.ArcElement(a), nil

	default:
		return domain.Element{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedElement, kind)
	}
}

func pointToDTO(p domain.Point) pointDTO {
	return pointDTO{X: p.X, Y: p.Y}
}

func pointsToDTO(points []domain.Point) []pointDTO {
	out := make([]pointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, pointToDTO(p))
	}
	return out
}

func snapshotToDTO(snap domain.Snapshot, historyIndex int) snapshotDTO {
	dto := snapshotDTO{
		Lines:        make([]lineDTO, 0, len(snap.Lines)),
		Arcs:         make([]arcDTO, 0, len(snap.Arcs)),
		HistoryIndex: historyIndex,
	}
	for _, l := range snap.Lines {
		var d lineDTO
		if p, ok := l.FirstPoint(); ok {
			v := pointToDTO(p)
			d.First = &v
		}
		if p, ok := l.SecondPoint(); ok {
			v := pointToDTO(p)
			d.Second = &v
		}
		dto.Lines = append(dto.Lines, d)
	}
	for _, a := range snap.Arcs {
		var d arcDTO
		if p, ok := a.Center(); ok {
			v := pointToDTO(p)
			d.Center = &v
		}
		if p, ok := a.RadiusPoint(); ok {
			v := pointToDTO(p)
			d.RadiusPoint = &v
		}
		dto.Arcs = append(dto.Arcs, d)
	}
	return dto
}
