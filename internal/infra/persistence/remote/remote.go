// Package remote implements the authoritative document store on gocloud.dev/docstore.
// The mem driver keeps documents in process; the firestore driver talks to Cloud Firestore.
package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"smokebreak/config"
	"smokebreak/internal/domain/constants"
	"smokebreak/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/gcpfirestore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

// keyField names the document key in every collection.
const keyField = "id"

// Collections holds one open docstore collection per remote collection.
type Collections struct {
	Users       *docstore.Collection
	Groups      *docstore.Collection
	Members     *docstore.Collection
	Invitations *docstore.Collection
}

// Params holds the dependencies for opening the remote store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the collections configured in remoteStore and closes them on shutdown.
func New(params Params) (*Collections, error) {
	cfg := params.Config.RemoteStore
	if cfg == nil {
		cfg = &config.RemoteStoreConfig{Driver: constants.RemoteDriverMem}
	}

	collections, err := Open(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Remote store opened",
		slog.String("driver", cfg.Driver),
		slog.String("project_id", cfg.ProjectID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing remote store")

			return collections.Close()
		},
	})

	return collections, nil
}

// Open opens every collection with the configured driver.
func Open(ctx context.Context, cfg *config.RemoteStoreConfig) (*Collections, error) {
	open, err := opener(cfg)
	if err != nil {
		return nil, err
	}

	names := []string{
		constants.CollectionUsers,
		constants.CollectionGroups,
		constants.CollectionMembers,
		constants.CollectionBreakInvitations,
	}

	opened := make([]*docstore.Collection, 0, len(names))
	for _, name := range names {
		coll, err := open(ctx, name)
		if err != nil {
			for _, c := range opened {
				_ = c.Close()
			}

			return nil, errors.Wrapf(err, "failed to open collection %s", name)
		}
		opened = append(opened, coll)
	}

	return &Collections{
		Users:       opened[0],
		Groups:      opened[1],
		Members:     opened[2],
		Invitations: opened[3],
	}, nil
}

// Close closes every collection and returns the first error.
func (c *Collections) Close() error {
	var firstErr error
	for _, coll := range []*docstore.Collection{c.Users, c.Groups, c.Members, c.Invitations} {
		if coll == nil {
			continue
		}
		if err := coll.Close(); err != nil && firstErr == nil {
			firstErr = errors.WithStack(err)
		}
	}

	return firstErr
}

type openFunc func(ctx context.Context, collection string) (*docstore.Collection, error)

func opener(cfg *config.RemoteStoreConfig) (openFunc, error) {
	switch cfg.Driver {
	case "", constants.RemoteDriverMem:
		return func(_ context.Context, _ string) (*docstore.Collection, error) {
			return memdocstore.OpenCollection(keyField, nil)
		}, nil

	case constants.RemoteDriverFirestore:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for the firestore driver")
		}

		return func(ctx context.Context, collection string) (*docstore.Collection, error) {
			url := fmt.Sprintf("firestore://projects/%s/databases/(default)/documents/%s?name_field=%s",
				cfg.ProjectID, collection, keyField)

			return docstore.OpenCollection(ctx, url)
		}, nil

	default:
		return nil, errors.Errorf("unsupported remote store driver: %s", cfg.Driver)
	}
}

// translateError maps docstore errors onto the repository sentinels.
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if gcerrors.Code(err) == gcerrors.NotFound {
		return repository.ErrRemoteNotFound
	}

	return errors.Wrap(errors.WithMessage(repository.ErrRemoteUnavailable, err.Error()), msg)
}

func checkBatch(ids []string) error {
	if len(ids) > repository.RemoteBatchLimit {
		return errors.Errorf("batch of %d ids exceeds the limit of %d", len(ids), repository.RemoteBatchLimit)
	}

	return nil
}

// getMany fetches documents in one action list, skipping the ones that do not exist.
func getMany[D any](ctx context.Context, coll *docstore.Collection, docs []*D) ([]*D, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	actions := coll.Actions()
	for _, doc := range docs {
		actions.Get(doc)
	}

	missing := make(map[int]struct{})
	if err := actions.Do(ctx); err != nil {
		var listErr docstore.ActionListError
		if !errors.As(err, &listErr) {
			return nil, translateError(err, "batched get failed")
		}

		for _, actionErr := range listErr {
			if gcerrors.Code(actionErr.Err) != gcerrors.NotFound {
				return nil, translateError(actionErr.Err, "batched get failed")
			}
			missing[actionErr.Index] = struct{}{}
		}
	}

	found := make([]*D, 0, len(docs))
	for idx, doc := range docs {
		if _, ok := missing[idx]; !ok {
			found = append(found, doc)
		}
	}

	return found, nil
}

// queryAll drains a query iterator into fresh documents.
func queryAll[D any](ctx context.Context, query *docstore.Query) ([]*D, error) {
	iter := query.Get(ctx)
	defer iter.Stop()

	var docs []*D
	for {
		doc := new(D)
		err := iter.Next(ctx, doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, translateError(err, "query failed")
		}
		docs = append(docs, doc)
	}
}
