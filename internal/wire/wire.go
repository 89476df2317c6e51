// Package wire provides dependency injection for the agora application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	chainadapter "github.com/example/agora/internal/adapters/chain"
	cliadapter "github.com/example/agora/internal/adapters/cli"
	"github.com/example/agora/internal/adapters/journal"
	"github.com/example/agora/internal/adapters/sqlite"
	"github.com/example/agora/internal/agent"
	"github.com/example/agora/internal/app"
	"github.com/example/agora/internal/chain"
	"github.com/example/agora/internal/config"
	"github.com/example/agora/internal/db"
	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

var (
	agentService       primary.AgentService
	messageService     primary.MessageService
	negotiationService primary.NegotiationService
	commerceService    primary.CommerceService
	journalRepo        secondary.JournalRepository
	logger             *log.Logger
	agentID            string
	once               sync.Once
)

// AgentService returns the singleton AgentService instance.
func AgentService() primary.AgentService {
	once.Do(initServices)
	return agentService
}

// MessageService returns the singleton MessageService instance.
func MessageService() primary.MessageService {
	once.Do(initServices)
	return messageService
}

// NegotiationService returns the singleton NegotiationService instance.
func NegotiationService() primary.NegotiationService {
	once.Do(initServices)
	return negotiationService
}

// CommerceService returns the singleton CommerceService instance.
func CommerceService() primary.CommerceService {
	once.Do(initServices)
	return commerceService
}

// JournalRepository returns the singleton journal repository.
func JournalRepository() secondary.JournalRepository {
	once.Do(initServices)
	return journalRepo
}

// Logger returns the shared stderr logger.
func Logger() *log.Logger {
	once.Do(initServices)
	return logger
}

// AgentID returns the resolved calling agent id.
func AgentID() string {
	once.Do(initServices)
	return agentID
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = log.New(os.Stderr, "agora: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config (run `agora init` first): %v", err)
	}

	identity, err := agent.Current()
	if err != nil {
		log.Fatalf("failed to resolve agent identity: %v", err)
	}
	agentID = identity.AgentID

	contract, err := cfg.RegistryContract()
	if err != nil {
		log.Fatalf("failed to resolve contract address: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize journal database: %v", err)
	}
	journalRepo = sqlite.NewJournalRepository(database)

	cli := chain.New(chain.Options{
		Binary:    cfg.Binary,
		Container: cfg.Container,
		ChainID:   cfg.ChainID,
		Node:      cfg.Node,
		From:      identity.Key,
		GasPrices: cfg.GasPrices,
	})

	// Every execute goes through the journaling decorator.
	var gateway secondary.ContractGateway = chainadapter.NewAdapter(cli)
	gateway = journal.NewGateway(gateway, journalRepo, logger)

	agentService = app.NewAgentService(gateway, contract, identity.AgentID, cfg.Denom)
	messageService = app.NewMessageService(gateway, contract, identity.AgentID)
	negotiationService = app.NewNegotiationService(gateway, contract, identity.AgentID, cfg.Denom)
	commerceService = app.NewCommerceService(gateway, contract, identity.AgentID)
}

// AgentAdapter returns a new AgentAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AgentAdapter() *cliadapter.AgentAdapter {
	return AgentAdapterWithOutput(os.Stdout)
}

// AgentAdapterWithOutput returns a new AgentAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func AgentAdapterWithOutput(out io.Writer) *cliadapter.AgentAdapter {
	once.Do(initServices)
	return cliadapter.NewAgentAdapter(agentService, out)
}

// MessageAdapter returns a new MessageAdapter writing to stdout.
func MessageAdapter() *cliadapter.MessageAdapter {
	return MessageAdapterWithOutput(os.Stdout)
}

// MessageAdapterWithOutput returns a new MessageAdapter writing to the given output.
func MessageAdapterWithOutput(out io.Writer) *cliadapter.MessageAdapter {
	once.Do(initServices)
	return cliadapter.NewMessageAdapter(messageService, out)
}

// NegotiationAdapter returns a new NegotiationAdapter writing to stdout.
func NegotiationAdapter() *cliadapter.NegotiationAdapter {
	return NegotiationAdapterWithOutput(os.Stdout)
}

// NegotiationAdapterWithOutput returns a new NegotiationAdapter writing to the given output.
func NegotiationAdapterWithOutput(out io.Writer) *cliadapter.NegotiationAdapter {
	once.Do(initServices)
	return cliadapter.NewNegotiationAdapter(negotiationService, out)
}

// CommerceAdapter returns a new CommerceAdapter writing to stdout.
func CommerceAdapter() *cliadapter.CommerceAdapter {
	return CommerceAdapterWithOutput(os.Stdout)
}

// CommerceAdapterWithOutput returns a new CommerceAdapter writing to the given output.
func CommerceAdapterWithOutput(out io.Writer) *cliadapter.CommerceAdapter {
	once.Do(initServices)
	return cliadapter.NewCommerceAdapter(commerceService, out)
}
