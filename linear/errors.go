// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDegenerate is returned by strict matrix inversion
	// when the determinant is zero.
	ErrDegenerate = errors.New("linear: degenerate matrix")

	// ErrInvalidRotation is returned when a rotation
	// conversion receives an unknown rotation order.
	ErrInvalidRotation = errors.New("linear: invalid rotation")
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used to report
// recoverable conditions.
// A nil l restores the standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}

// degenerate handles a zero determinant found by the
// inversion op. It returns the error to propagate, which
// is nil unless strict is set.
func degenerate(op string, strict bool) error {
	if strict {
		return errors.Wrapf(ErrDegenerate, "%s: determinant is 0", op)
	}
	log.WithFields(logrus.Fields{"op": op, "det": 0}).Warn("can't invert matrix, resetting to identity")
	return nil
}

func invalidOrder(op string, o Order) error {
	return errors.Wrapf(ErrInvalidRotation, "%s: unknown rotation order %q", op, string(o))
}
