package engine

import (
	"fmt"
)

// ErrorKind classifies engine errors by the category of failed check
type ErrorKind int

const (
	// ErrorKindUnknown is an unclassified error
	ErrorKindUnknown ErrorKind = iota

	// ErrorKindValidation is an out-of-range or malformed input
	ErrorKindValidation

	// ErrorKindAuthorization is a caller identity mismatch
	ErrorKindAuthorization

	// ErrorKindState is an operation invoked outside its valid state or window
	ErrorKindState

	// ErrorKindArithmetic is a checked arithmetic overflow or division by zero
	ErrorKindArithmetic

	// ErrorKindResourceLimit is a capacity or rate limit hit
	ErrorKindResourceLimit

	// ErrorKindTransfer is a value transfer service failure
	ErrorKindTransfer
)

// Error is a typed engine error. A failed call leaves all persisted records
// unchanged and emits no event.
type Error struct {
	kind  ErrorKind
	code  string
	msg   string
	cause error
}

// Kind returns the error category
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Code returns the stable error code
func (e *Error) Code() string {
	return e.code
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: %v", e.msg, e.cause)
	}
	return e.msg
}

// Cause returns the underlying error, if any
func (e *Error) Cause() error {
	return e.cause
}

func newError(kind ErrorKind, code string, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

// NewTransferError wraps a value transfer service failure
func NewTransferError(err error) *Error {
	return &Error{
		kind:  ErrorKindTransfer,
		code:  "TransferFailed",
		msg:   "value transfer failed",
		cause: err,
	}
}

// KindOf returns the ErrorKind of an error, unwrapping wrapped causes.
// Returns ErrorKindUnknown for errors not produced by the engine. The chain
// is walked a level at a time so an *Error is caught before its nil or
// non-engine cause is reached.
func KindOf(err error) ErrorKind {
	type causer interface {
		Cause() error
	}
	for err != nil {
		if engErr, ok := err.(*Error); ok {
			return engErr.Kind()
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return ErrorKindUnknown
}

var (
	// ErrProtocolPaused is returned when a mutating call hits a paused protocol
	ErrProtocolPaused = newError(ErrorKindState, "ProtocolPaused", "protocol is paused")

	// ErrProtocolAlreadyInitialized is returned when initializing over an
	// existing protocol state record
	ErrProtocolAlreadyInitialized = newError(ErrorKindState, "ProtocolAlreadyInitialized", "protocol already initialized")

	// ErrUnauthorized is returned when the caller identity fails a membership
	// or ownership check
	ErrUnauthorized = newError(ErrorKindAuthorization, "Unauthorized", "caller is not authorized")

	// ErrInvalidQuorumPercentage is returned for a quorum percentage outside
	// the configurable bounds
	ErrInvalidQuorumPercentage = newError(ErrorKindValidation, "InvalidQuorumPercentage", "invalid quorum percentage")

	// ErrInvalidVotingPeriod is returned for a voting period outside the
	// configurable bounds
	ErrInvalidVotingPeriod = newError(ErrorKindValidation, "InvalidVotingPeriod", "invalid voting period")

	// ErrInvalidRewardPerVote is returned for a zero reward per vote
	ErrInvalidRewardPerVote = newError(ErrorKindValidation, "InvalidRewardPerVote", "invalid reward per vote")

	// ErrInvalidStakeRequired is returned for a stake requirement above the
	// per-user stake cap
	ErrInvalidStakeRequired = newError(ErrorKindValidation, "InvalidStakeRequired", "invalid stake requirement")

	// ErrUnsupportedContentType is returned for content types not accepted
	// for submission
	ErrUnsupportedContentType = newError(ErrorKindValidation, "UnsupportedContentType", "unsupported content type")

	// ErrContentHashTooLong is returned for an oversized content fingerprint
	ErrContentHashTooLong = newError(ErrorKindValidation, "ContentHashTooLong", "content hash too long")

	// ErrLowAIConfidence is returned for an AI score below the acceptance floor
	ErrLowAIConfidence = newError(ErrorKindValidation, "LowAIConfidence", "AI confidence too low")

	// ErrInvalidStakeAmount is returned for a stake outside the allowed bounds
	ErrInvalidStakeAmount = newError(ErrorKindValidation, "InvalidStakeAmount", "invalid stake amount")

	// ErrVotingPeriodActive is returned when finalizing before the window closes
	ErrVotingPeriodActive = newError(ErrorKindState, "VotingPeriodActive", "voting period is still active")

	// ErrVotingPeriodEnded is returned when voting after the window closes
	ErrVotingPeriodEnded = newError(ErrorKindState, "VotingPeriodEnded", "voting period has ended")

	// ErrVotingTooFrequent is returned when a vote lands inside the
	// per-content cooldown window
	ErrVotingTooFrequent = newError(ErrorKindState, "VotingTooFrequent", "voting too frequently on this content")

	// ErrQuorumNotReached is returned when finalizing without quorum
	ErrQuorumNotReached = newError(ErrorKindState, "QuorumNotReached", "quorum not reached")

	// ErrContentAlreadyFinalized is returned when finalizing a terminal
	// content item
	ErrContentAlreadyFinalized = newError(ErrorKindState, "ContentAlreadyFinalized", "content already finalized")

	// ErrRewardsAlreadyClaimed is returned on a second claim against a vote
	ErrRewardsAlreadyClaimed = newError(ErrorKindState, "RewardsAlreadyClaimed", "rewards already claimed")

	// ErrStakeStillLocked is returned when claiming before the lockup elapses
	ErrStakeStillLocked = newError(ErrorKindState, "StakeStillLocked", "stake is still locked")

	// ErrRewardDistributionNotDue is returned when distributing before the
	// distribution period elapses
	ErrRewardDistributionNotDue = newError(ErrorKindState, "RewardDistributionNotDue", "reward distribution not due yet")

	// ErrInsufficientRewardPool is returned when the reward pool is empty or
	// cannot cover the summed batch payouts
	ErrInsufficientRewardPool = newError(ErrorKindState, "InsufficientRewardPool", "insufficient reward pool")

	// ErrCalculation is returned on checked arithmetic overflow or division
	// by zero
	ErrCalculation = newError(ErrorKindArithmetic, "CalculationError", "calculation error")

	// ErrDailySubmissionLimit is returned when the rolling submission cap is hit
	ErrDailySubmissionLimit = newError(ErrorKindResourceLimit, "DailySubmissionLimit", "daily submission limit reached")

	// ErrDailyVoteLimit is returned when the rolling vote cap is hit
	ErrDailyVoteLimit = newError(ErrorKindResourceLimit, "DailyVoteLimit", "daily vote limit reached")

	// ErrMaxEmergencyAdminsReached is returned when the admin set is at capacity
	ErrMaxEmergencyAdminsReached = newError(ErrorKindResourceLimit, "MaxEmergencyAdminsReached", "maximum emergency admins reached")

	// ErrCannotRemoveLastAdmin is returned when removal would empty the admin set
	ErrCannotRemoveLastAdmin = newError(ErrorKindResourceLimit, "CannotRemoveLastAdmin", "cannot remove the last emergency admin")
)
