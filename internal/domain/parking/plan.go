package parking

import (
	"fmt"
	"strconv"

	"logipark/internal/pkg/errs"
)

// SpaceGroup asks for Count spaces of one type numbered Prefix+StartIndex, Prefix+StartIndex+1, ...
type SpaceGroup struct {
	Type       SpaceType
	Count      int
	Prefix     string
	StartIndex int
}

type GenerationPlan struct {
	total  int
	groups []SpaceGroup
}

type SpaceSpec struct {
	Number string
	Type   SpaceType
}

func NewGenerationPlan(total int, groups []SpaceGroup) (GenerationPlan, error) {
	if total < 0 {
		return GenerationPlan{}, errs.Wrapf(ErrInvalidPlan, "total must not be negative, got %d", total)
	}
	sum := 0
	for i, g := range groups {
		if !g.Type.IsValid() {
			return GenerationPlan{}, errs.Wrapf(ErrInvalidSpaceType, "group %d: %q", i, g.Type)
		}
		if g.Count < 0 || g.StartIndex < 0 {
			return GenerationPlan{}, errs.Wrapf(ErrInvalidPlan, "group %d: count and start index must not be negative", i)
		}
		sum += g.Count
	}
	if sum != total {
		return GenerationPlan{}, errs.Wrapf(ErrPlanTotalMismatch, "groups sum to %d, declared total %d", sum, total)
	}
	return GenerationPlan{total: total, groups: groups}, nil
}

func (p GenerationPlan) Total() int { return p.total }

// Specs expands the plan into concrete space numbers. Indices are zero-padded to
// the width of the group's last index, minimum two digits.
func (p GenerationPlan) Specs() ([]SpaceSpec, error) {
	specs := make([]SpaceSpec, 0, p.total)
	seen := make(map[string]struct{}, p.total)
	for _, g := range p.groups {
		last := g.StartIndex + g.Count - 1
		width := max(len(strconv.Itoa(last)), 2)
		for i := 0; i < g.Count; i++ {
			number := fmt.Sprintf("%s%0*d", g.Prefix, width, g.StartIndex+i)
			if _, dup := seen[number]; dup {
				return nil, errs.Wrapf(ErrDuplicateSpaceNumber, "%s", number)
			}
			seen[number] = struct{}{}
			specs = append(specs, SpaceSpec{Number: number, Type: g.Type})
		}
	}
	return specs, nil
}
