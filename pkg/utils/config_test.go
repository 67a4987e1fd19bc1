// Package utils_test contains tests for the config utils
package utils_test

import (
	"os"
	"testing"

	"github.com/scrynet/moderation-protocol/pkg/utils"
)

func setRequiredEnv() {
	os.Setenv(
		"MODERATION_CRON_CONFIG",
		"* * * * *",
	)
	os.Setenv(
		"MODERATION_ADMIN_ADDRESS",
		"0x77e5aaBddb760FBa989A1C4B2CDd4aA8Fa3d311d",
	)
	os.Setenv(
		"MODERATION_TREASURY_ADDRESS",
		"0xDFe273082089bB7f70Ee36Eebcde64832FE97E55",
	)
	os.Setenv(
		"MODERATION_STAKE_VAULT_ADDRESS",
		"0x39e9e6bFb4B98EA0EBbc4a7e57dC1d38413Fd1a1",
	)
	os.Setenv(
		"MODERATION_REWARD_VAULT_ADDRESS",
		"0x8c722B9F4B80A5F0C88b02eD123AB97D354eB5e7",
	)
	os.Setenv(
		"MODERATION_PERSISTER_TYPE_NAME",
		"postgresql",
	)
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_ADDRESS",
		"localhost",
	)
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_PORT",
		"5432",
	)
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_DBNAME",
		"moderation",
	)
}

func TestModerationConfig(t *testing.T) {
	setRequiredEnv()
	config := &utils.ModerationConfig{}
	err := config.PopulateFromEnv()
	if err != nil {
		t.Errorf("Failed to populate from environment: err: %v", err)
	}
	if config.PersisterType != utils.PersisterTypePostgresql {
		t.Errorf("Should have resolved the postgresql persister type: %v", config.PersisterType)
	}
	if config.StakeRequired != 1000000 {
		t.Errorf("Should have defaulted the stake requirement: %v", config.StakeRequired)
	}
	if config.VotingPeriodSecs != 86400 {
		t.Errorf("Should have defaulted the voting period: %v", config.VotingPeriodSecs)
	}
	if config.QuorumPercentage != 50 {
		t.Errorf("Should have defaulted the quorum percentage: %v", config.QuorumPercentage)
	}
}

func TestBadPersisterNameModerationConfig(t *testing.T) {
	setRequiredEnv()
	// Bad persister name
	os.Setenv(
		"MODERATION_PERSISTER_TYPE_NAME",
		"mysql",
	)
	config := &utils.ModerationConfig{}
	err := config.PopulateFromEnv()
	if err == nil {
		t.Errorf("Should have failed on an invalid persister name")
	}
	os.Setenv(
		"MODERATION_PERSISTER_TYPE_NAME",
		"postgresql",
	)
}

func TestBadCronConfig(t *testing.T) {
	setRequiredEnv()
	os.Setenv(
		"MODERATION_CRON_CONFIG",
		"every five minutes",
	)
	config := &utils.ModerationConfig{}
	err := config.PopulateFromEnv()
	if err == nil {
		t.Errorf("Should have failed on an invalid cron string")
	}
	os.Setenv(
		"MODERATION_CRON_CONFIG",
		"* * * * *",
	)
}

func TestMissingPostgresFieldsModerationConfig(t *testing.T) {
	setRequiredEnv()
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_ADDRESS",
		"",
	)
	config := &utils.ModerationConfig{}
	err := config.PopulateFromEnv()
	if err == nil {
		t.Errorf("Should have failed on a missing postgres address")
	}
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_ADDRESS",
		"localhost",
	)
}

func TestNonePersisterModerationConfig(t *testing.T) {
	setRequiredEnv()
	os.Setenv(
		"MODERATION_PERSISTER_TYPE_NAME",
		"none",
	)
	os.Setenv(
		"MODERATION_PERSISTER_POSTGRES_ADDRESS",
		"",
	)
	config := &utils.ModerationConfig{}
	err := config.PopulateFromEnv()
	if err != nil {
		t.Errorf("Should not have required postgres fields for the none persister: err: %v", err)
	}
	if config.PersisterType != utils.PersisterTypeNone {
		t.Errorf("Should have resolved the none persister type: %v", config.PersisterType)
	}
}
