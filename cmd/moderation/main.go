package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"

	"github.com/scrynet/moderation-protocol/pkg/servicemain"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

func main() {
	config := &utils.ModerationConfig{}
	flag.Usage = func() {
		config.OutputUsage()
		os.Exit(0)
	}
	flag.Parse()

	err := config.PopulateFromEnv()
	if err != nil {
		config.OutputUsage()
		log.Errorf("Invalid moderation config: err: %v\n", err)
		os.Exit(2)
	}

	persisters, err := servicemain.InitPersisters(config)
	if err != nil {
		log.Errorf("Error initializing persisters: err: %v", err)
		os.Exit(2)
	}

	eng, emitter, err := servicemain.InitEngine(config, persisters)
	if err != nil {
		log.Errorf("Error initializing engine: err: %v", err)
		os.Exit(2)
	}

	err = servicemain.EnsureProtocolInitialized(config, eng, persisters)
	if err != nil {
		log.Errorf("Error initializing protocol state: err: %v", err)
		os.Exit(2)
	}

	servicemain.SetupKillNotify(emitter)

	servicemain.MaintenanceCronMain(config, eng, persisters)
}
