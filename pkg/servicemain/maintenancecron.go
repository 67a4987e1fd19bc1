package servicemain

import (
	"os"
	"runtime"
	"time"

	log "github.com/golang/glog"

	"github.com/robfig/cron"

	"github.com/scrynet/moderation-protocol/pkg/engine"
	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

const (
	checkRunSecs = 5
)

func checkCron(cr *cron.Cron) {
	entries := cr.Entries()
	for _, entry := range entries {
		log.Infof("Maintenance run times: prev: %v, next: %v\n", entry.Prev, entry.Next)
	}
}

func finalizeExpiredContent(eng *engine.Engine, persisters *InitializedPersisters) {
	pending, err := persisters.Content.ContentsByStatus(model.ContentStatusPending)
	if err != nil {
		if err == model.ErrPersisterNoResults {
			return
		}
		log.Errorf("Error retrieving pending content: err: %v", err)
		return
	}

	for _, content := range pending {
		status, err := eng.FinalizeDecision(content.ContentID())
		if err != nil {
			switch err {
			case engine.ErrVotingPeriodActive:
				// Still open, come back on a later run
			case engine.ErrQuorumNotReached:
				log.Infof("Quorum not reached for content %v, leaving pending", content.ContentID())
			default:
				log.Errorf("Error finalizing content %v: err: %v", content.ContentID(), err)
			}
			continue
		}
		log.Infof("Finalized content %v: status: %v, window closed: %v", content.ContentID(),
			status, utils.SecsToTime(content.SubmissionTime()+content.VotingPeriod()))
	}
}

func distributeRewards(eng *engine.Engine, persisters *InitializedPersisters) {
	votes, err := persisters.Vote.ActiveVotes()
	if err != nil {
		if err == model.ErrPersisterNoResults {
			return
		}
		log.Errorf("Error retrieving active votes: err: %v", err)
		return
	}

	distributed, err := eng.DistributeRewards(votes)
	if err != nil {
		if err == engine.ErrRewardDistributionNotDue {
			log.Infof("Reward distribution not due yet")
			return
		}
		log.Errorf("Error distributing rewards: err: %v", err)
		return
	}
	log.Infof("Distributed %v in rewards over %v candidate votes", distributed, len(votes))
}

func runMaintenanceCron(eng *engine.Engine, persisters *InitializedPersisters) {
	finalizeExpiredContent(eng, persisters)
	distributeRewards(eng, persisters)
	log.Infof("Done running maintenance: %v", runtime.NumGoroutine())
}

// MaintenanceCronMain runs finalization and reward distribution on a cronjob
func MaintenanceCronMain(config *utils.ModerationConfig, eng *engine.Engine,
	persisters *InitializedPersisters) {
	cr := cron.New()
	err := cr.AddFunc(config.CronConfig, func() { runMaintenanceCron(eng, persisters) })
	if err != nil {
		log.Errorf("Error starting: err: %v", err)
		os.Exit(1)
	}
	cr.Start()

	// Blocks here while the cron process runs
	for range time.After(checkRunSecs * time.Second) {
		checkCron(cr)
	}
}
