package engine

import (
	gomath "math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/google/uuid"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// ContentData is the caller-supplied payload for a content submission
type ContentData struct {
	ContentHash []byte
	ContentType model.ContentType
	AIScore     uint8
}

// SubmitContent creates a new pending content item. The voting period and
// quorum percentage are snapshotted from the protocol state so later config
// changes do not retroactively alter in-flight content. Gated by the pause
// flag and the rolling daily submission cap.
func (e *Engine) SubmitContent(data *ContentData, submitter common.Address) (*model.Content, error) {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return nil, err
	}
	now := e.clock.Now()

	err = e.checkActiveStatus(state)
	if err != nil {
		return nil, err
	}
	e.checkAndResetDailyLimits(state, now)
	if state.DailySubmissionCount() >= MaxDailySubmissions {
		return nil, ErrDailySubmissionLimit
	}

	if data.ContentType == model.ContentTypeVideo || data.ContentType == model.ContentTypeDeFi {
		return nil, ErrUnsupportedContentType
	}
	if len(data.ContentHash) > MaxContentHashLength {
		return nil, ErrContentHashTooLong
	}
	if data.AIScore < MinAIConfidence {
		return nil, ErrLowAIConfidence
	}

	newCount, overflow := safeAddUint32(state.DailySubmissionCount(), 1)
	if overflow {
		return nil, ErrCalculation
	}

	content := model.NewContent(uuid.New().String(), submitter, data.ContentHash,
		data.ContentType, data.AIScore, now, state.VotingPeriod(), state.QuorumPercentage(),
		ProgramVersion)

	err = e.contentPersister.CreateContent(content)
	if err != nil {
		return nil, err
	}

	state.SetDailySubmissionCount(newCount)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return nil, err
	}

	e.emit(model.EventTypeContentSubmitted, model.Metadata{
		"contentID":   content.ContentID(),
		"submitter":   content.Submitter().Hex(),
		"contentHash": hexutil.Encode(content.ContentHash()),
		"contentType": int(content.ContentType()),
		"aiScore":     content.AIScore(),
		"timestamp":   content.SubmissionTime(),
	})

	return content, nil
}

// FinalizeDecision closes a content item's voting window and writes the
// terminal status: Approved when approve stake strictly exceeds reject
// stake, Rejected otherwise (ties reject). The transition is one way; a
// second finalize fails rather than re-deciding.
func (e *Engine) FinalizeDecision(contentID string) (model.ContentStatus, error) {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return model.ContentStatusPending, err
	}
	err = e.checkActiveStatus(state)
	if err != nil {
		return model.ContentStatusPending, err
	}

	content, err := e.contentPersister.ContentByID(contentID)
	if err != nil {
		return model.ContentStatusPending, err
	}

	if content.Status() != model.ContentStatusPending {
		return content.Status(), ErrContentAlreadyFinalized
	}

	now := e.clock.Now()
	if now <= content.SubmissionTime()+content.VotingPeriod() {
		return model.ContentStatusPending, ErrVotingPeriodActive
	}

	totalVotes, overflow := math.SafeAdd(content.ApproveVotes(), content.RejectVotes())
	if overflow {
		return model.ContentStatusPending, ErrCalculation
	}
	quorumStake, overflow := math.SafeMul(content.TotalStake(), uint64(content.QuorumPercentage()))
	if overflow {
		return model.ContentStatusPending, ErrCalculation
	}
	if totalVotes < quorumStake/100 {
		return model.ContentStatusPending, ErrQuorumNotReached
	}

	finalStatus := model.ContentStatusRejected
	if content.ApproveVotes() > content.RejectVotes() {
		finalStatus = model.ContentStatusApproved
	}

	content.SetStatus(finalStatus)
	err = e.contentPersister.UpdateContent(content)
	if err != nil {
		return model.ContentStatusPending, err
	}

	e.emit(model.EventTypeDecisionFinalized, model.Metadata{
		"contentID":    content.ContentID(),
		"finalStatus":  int(finalStatus),
		"approveVotes": content.ApproveVotes(),
		"rejectVotes":  content.RejectVotes(),
		"totalStake":   totalVotes,
		"timestamp":    now,
	})

	return finalStatus, nil
}

func safeAddUint32(x uint32, y uint32) (uint32, bool) {
	if x > gomath.MaxUint32-y {
		return 0, true
	}
	return x + y, false
}
