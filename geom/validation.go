package geom

import "errors"

// Sentinel errors returned by the boolean-op, offset and utility entry
// points. Declared together since they gate the same validation pass.
var (
	ErrInvalidClipType   = errors.New("invalid clip type: must be one of Intersection, Union, Difference, Xor")
	ErrInvalidFillRule   = errors.New("invalid fill rule: must be one of EvenOdd, NonZero, Positive, Negative")
	ErrInvalidJoinType   = errors.New("invalid join type: must be one of JoinSquare, JoinBevel, JoinRound, JoinMiter")
	ErrInvalidEndType    = errors.New("invalid end type: must be one of EndPolygon, EndJoined, EndButt, EndSquare, EndRound")
	ErrInvalidOptions    = errors.New("invalid offset options: miterLimit and arcTolerance must be > 0")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrEmptyPath         = errors.New("path is nil or empty")
	ErrDegeneratePolygon = errors.New("polygon has fewer than 3 points")
)

func validateClipType(clipType ClipType) error {
	if clipType > Xor {
		return ErrInvalidClipType
	}
	return nil
}

func validateFillRule(fillRule FillRule) error {
	if fillRule > Negative {
		return ErrInvalidFillRule
	}
	return nil
}

func validateJoinType(joinType JoinType) error {
	if joinType > JoinMiter {
		return ErrInvalidJoinType
	}
	return nil
}

func validateEndType(endType EndType) error {
	if endType > EndRound {
		return ErrInvalidEndType
	}
	return nil
}

// filterValidPaths drops paths with fewer than minPoints points, returning
// the surviving paths and how many were dropped.
func filterValidPaths(paths Shape, minPoints int) (Shape, int) {
	if len(paths) == 0 {
		return paths, 0
	}
	filtered := make(Shape, 0, len(paths))
	dropped := 0
	for _, p := range paths {
		if len(p) < minPoints {
			dropped++
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, dropped
}
