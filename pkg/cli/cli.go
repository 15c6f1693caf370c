package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"todopane/pkg/bridge"
	"todopane/pkg/config"
	"todopane/pkg/kvstore"
	"todopane/pkg/utils"
)

// Args represents the global command line flags
type Args struct {
	ConfigPath string
	Database   string
	Driver     string
	Verbose    bool
	Memory     bool
}

// session is an open store with a served bridge in front of it
type session struct {
	*bridge.Bridge
	cfg   config.Config
	store kvstore.Store
	group *errgroup.Group
}

// openSession loads configuration, opens the store and starts the host
func openSession(ctx context.Context, args *Args) (*session, error) {
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Command-line flags override the config file
	if args.Driver != "" {
		cfg.Driver = args.Driver
	}
	if args.Database != "" {
		cfg.Database = args.Database
	}

	var store kvstore.Store
	if args.Memory {
		store = kvstore.NewMemoryStore()
	} else {
		store, err = kvstore.Open(ctx, cfg.Driver, cfg.Database)
		if err != nil {
			return nil, err
		}
	}

	b, host := bridge.Connect(store, cfg.StorageKey)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return host.Run(gctx)
	})

	utils.Log("Session opened on key %s", host.Key())
	return &session{Bridge: b, cfg: cfg, store: store, group: group}, nil
}

// Close flushes queued saves, stops the host and closes the store
func (s *session) Close() error {
	s.Bridge.Close()
	hostErr := s.group.Wait()
	storeErr := s.store.Close()
	if hostErr != nil {
		return hostErr
	}
	return storeErr
}

// withSession runs fn against a fresh session and always closes it
func withSession(cmd *cobra.Command, args *Args, fn func(ctx context.Context, s *session) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(ctx, args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(ctx, s)
}
