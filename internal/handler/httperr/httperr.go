package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	Dimension     string `json:"dimension"`
	ReservationID string `json:"reservation_id,omitempty"`
}

type TransitionDetail struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders a usecase error with the status its kind maps to.
// Internal errors never leak their message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)

	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = string(kind)
	resp.Detail = detailOf(err)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidState:
		return http.StatusUnprocessableEntity
	case errs.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func detailOf(err error) any {
	var conflict *reservation.ConflictError
	if errs.As(err, &conflict) {
		d := ConflictDetail{Dimension: string(conflict.Dimension)}
		if conflict.ReservationID != uuid.Nil {
			d.ReservationID = conflict.ReservationID.String()
		}
		return d
	}
	var transition *reservation.InvalidTransitionError
	if errs.As(err, &transition) {
		return TransitionDetail{From: string(transition.From), To: string(transition.To)}
	}
	return nil
}
