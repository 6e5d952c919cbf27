package engine

import "fmt"

// ErrorCode identifies why an action was rejected.
type ErrorCode string

const (
	CodeNotYourTurn       ErrorCode = "not_your_turn"
	CodeBattleComplete    ErrorCode = "battle_complete"
	CodeNoItem            ErrorCode = "no_item"
	CodeLowEnergy         ErrorCode = "low_energy"
	CodeLowHealth         ErrorCode = "low_health"
	CodeOutOfUses         ErrorCode = "out_of_uses"
	CodeAlreadyUsed       ErrorCode = "already_used_this_turn"
	CodeOutOfRange        ErrorCode = "out_of_range"
	CodeJumpingRequired   ErrorCode = "jumping_required"
	CodeOutOfRetreatRange ErrorCode = "out_of_retreat_range"
	CodeUnknownAction     ErrorCode = "unknown_action"
)

// ActionError is a gameplay rejection: the request was well-formed but the
// move is not legal right now. The battle state is left untouched and the
// reason is suitable for direct display.
type ActionError struct {
	Code   ErrorCode
	Reason string
}

func (e *ActionError) Error() string { return e.Reason }

func reject(code ErrorCode, reason string) *ActionError {
	return &ActionError{Code: code, Reason: reason}
}

// StructuralError is a protocol contract violation: a required argument is
// missing or malformed. The transport layer should never let such a
// request reach the engine.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

func structural(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}
