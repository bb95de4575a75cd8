package remote

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"gocloud.dev/docstore"
)

type userStore struct {
	coll *docstore.Collection
}

// NewUserStore returns the remote users collection.
func NewUserStore(collections *Collections) repository.RemoteUserStore {
	return &userStore{coll: collections.Users}
}

func (s *userStore) Get(ctx context.Context, id string) (*entity.User, error) {
	doc := &userDocument{ID: id}
	if err := s.coll.Get(ctx, doc); err != nil {
		return nil, translateError(err, "failed to get remote user")
	}

	return toUserDomain(doc), nil
}

func (s *userStore) GetMany(ctx context.Context, ids []string) ([]*entity.User, error) {
	if err := checkBatch(ids); err != nil {
		return nil, err
	}

	docs := make([]*userDocument, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, &userDocument{ID: id})
	}

	found, err := getMany(ctx, s.coll, docs)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(found))
	for _, doc := range found {
		users = append(users, toUserDomain(doc))
	}

	return users, nil
}

func (s *userStore) Put(ctx context.Context, user *entity.User) error {
	return translateError(s.coll.Put(ctx, fromUserDomain(user)), "failed to put remote user")
}

func (s *userStore) UpdateOnline(ctx context.Context, id string, online bool, at time.Time) error {
	err := s.coll.Update(ctx, &userDocument{ID: id}, docstore.Mods{
		"is_online":  online,
		"updated_at": toMillis(at),
	})

	return translateError(err, "failed to update remote online status")
}

func (s *userStore) UpdateFCMToken(ctx context.Context, id, token string, at time.Time) error {
	err := s.coll.Update(ctx, &userDocument{ID: id}, docstore.Mods{
		"fcm_token":  token,
		"updated_at": toMillis(at),
	})

	return translateError(err, "failed to update remote push token")
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	return translateError(s.coll.Delete(ctx, &userDocument{ID: id}), "failed to delete remote user")
}
