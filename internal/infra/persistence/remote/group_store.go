package remote

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"gocloud.dev/docstore"
)

type groupStore struct {
	coll *docstore.Collection
}

// NewGroupStore returns the remote groups collection.
func NewGroupStore(collections *Collections) repository.RemoteGroupStore {
	return &groupStore{coll: collections.Groups}
}

func (s *groupStore) Get(ctx context.Context, id string) (*entity.Group, error) {
	doc := &groupDocument{ID: id}
	if err := s.coll.Get(ctx, doc); err != nil {
		return nil, translateError(err, "failed to get remote group")
	}

	return toGroupDomain(doc), nil
}

func (s *groupStore) GetMany(ctx context.Context, ids []string) ([]*entity.Group, error) {
	if err := checkBatch(ids); err != nil {
		return nil, err
	}

	docs := make([]*groupDocument, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, &groupDocument{ID: id})
	}

	found, err := getMany(ctx, s.coll, docs)
	if err != nil {
		return nil, err
	}

	groups := make([]*entity.Group, 0, len(found))
	for _, doc := range found {
		groups = append(groups, toGroupDomain(doc))
	}

	return groups, nil
}

// FindByInviteCode returns the group holding the code, active or not.
func (s *groupStore) FindByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	docs, err := queryAll[groupDocument](ctx, s.coll.Query().
		Where("invite_code", "=", code).
		Limit(1))
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, repository.ErrRemoteNotFound
	}

	return toGroupDomain(docs[0]), nil
}

func (s *groupStore) Put(ctx context.Context, group *entity.Group) error {
	return translateError(s.coll.Put(ctx, fromGroupDomain(group)), "failed to put remote group")
}

func (s *groupStore) UpdateActive(ctx context.Context, id string, active bool, at time.Time) error {
	err := s.coll.Update(ctx, &groupDocument{ID: id}, docstore.Mods{
		"is_active":  active,
		"updated_at": toMillis(at),
	})

	return translateError(err, "failed to update remote group")
}

func (s *groupStore) Delete(ctx context.Context, id string) error {
	return translateError(s.coll.Delete(ctx, &groupDocument{ID: id}), "failed to delete remote group")
}
