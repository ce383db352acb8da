package dcmeta

import "github.com/reoring/dcmeta/i18n"

// Direction is text directionality. The zero value is unset and is never
// returned by ParseDirection.
type Direction uint8

const (
	DirLTR Direction = iota + 1
	DirRTL
)

// ParseDirection accepts exactly "ltr" or "rtl". Matching is byte-for-byte:
// no trimming and no case folding. The error carries the offending value in
// InputFragment and Params["got"].
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr":
		return DirLTR, nil
	case "rtl":
		return DirRTL, nil
	}
	return 0, Issues{{
		Path:          "/",
		Code:          CodeInvalidEnum,
		Message:       i18n.T(CodeInvalidEnum, map[string]string{"got": s}),
		Hint:          "ltr|rtl",
		InputFragment: s,
		Params:        map[string]any{"got": s, "allowed": []string{"ltr", "rtl"}},
	}}
}

func (d Direction) String() string {
	switch d {
	case DirLTR:
		return "ltr"
	case DirRTL:
		return "rtl"
	default:
		return ""
	}
}
