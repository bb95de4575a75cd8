package remote

import (
	"context"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"gocloud.dev/docstore"
)

type memberStore struct {
	coll *docstore.Collection
}

// NewMemberStore returns the remote members collection.
func NewMemberStore(collections *Collections) repository.RemoteMemberStore {
	return &memberStore{coll: collections.Members}
}

func (s *memberStore) Get(ctx context.Context, groupID, userID string) (*entity.Member, error) {
	doc := &memberDocument{ID: memberKey(groupID, userID)}
	if err := s.coll.Get(ctx, doc); err != nil {
		return nil, translateError(err, "failed to get remote member")
	}

	return toMemberDomain(doc), nil
}

func (s *memberStore) FindByUser(ctx context.Context, userID string) ([]*entity.Member, error) {
	return s.find(ctx, s.coll.Query().Where("user_id", "=", userID))
}

func (s *memberStore) FindByGroup(ctx context.Context, groupID string) ([]*entity.Member, error) {
	return s.find(ctx, s.coll.Query().Where("group_id", "=", groupID))
}

func (s *memberStore) FindByGroups(ctx context.Context, groupIDs []string) ([]*entity.Member, error) {
	if err := checkBatch(groupIDs); err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return []*entity.Member{}, nil
	}

	return s.find(ctx, s.coll.Query().Where("group_id", "in", groupIDs))
}

func (s *memberStore) find(ctx context.Context, query *docstore.Query) ([]*entity.Member, error) {
	docs, err := queryAll[memberDocument](ctx, query)
	if err != nil {
		return nil, err
	}

	members := make([]*entity.Member, 0, len(docs))
	for _, doc := range docs {
		members = append(members, toMemberDomain(doc))
	}

	return members, nil
}

func (s *memberStore) Put(ctx context.Context, member *entity.Member) error {
	return translateError(s.coll.Put(ctx, fromMemberDomain(member)), "failed to put remote member")
}

func (s *memberStore) UpdateRole(ctx context.Context, groupID, userID string, role entity.GroupRole) error {
	err := s.coll.Update(ctx, &memberDocument{ID: memberKey(groupID, userID)}, docstore.Mods{
		"role": string(role),
	})

	return translateError(err, "failed to update remote member role")
}

func (s *memberStore) UpdateActive(ctx context.Context, groupID, userID string, active bool) error {
	err := s.coll.Update(ctx, &memberDocument{ID: memberKey(groupID, userID)}, docstore.Mods{
		"is_active": active,
	})

	return translateError(err, "failed to update remote member")
}

func (s *memberStore) Delete(ctx context.Context, groupID, userID string) error {
	return translateError(s.coll.Delete(ctx, &memberDocument{ID: memberKey(groupID, userID)}),
		"failed to delete remote member")
}
