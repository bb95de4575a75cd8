package remote

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"gocloud.dev/docstore"
)

type invitationStore struct {
	coll *docstore.Collection
}

// NewInvitationStore returns the remote break_invitations collection.
func NewInvitationStore(collections *Collections) repository.RemoteInvitationStore {
	return &invitationStore{coll: collections.Invitations}
}

func (s *invitationStore) Get(ctx context.Context, id string) (*entity.BreakInvitation, error) {
	doc := &invitationDocument{ID: id}
	if err := s.coll.Get(ctx, doc); err != nil {
		return nil, translateError(err, "failed to get remote invitation")
	}

	return toInvitationDomain(doc), nil
}

func (s *invitationStore) FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakInvitation, error) {
	return s.find(ctx, s.coll.Query().Where("group_id", "=", groupID))
}

func (s *invitationStore) FindExpiredPending(ctx context.Context, now time.Time) ([]*entity.BreakInvitation, error) {
	return s.find(ctx, s.coll.Query().
		Where("status", "=", string(entity.InvitationPending)).
		Where("expires_at", "<=", now.UnixMilli()))
}

func (s *invitationStore) find(ctx context.Context, query *docstore.Query) ([]*entity.BreakInvitation, error) {
	docs, err := queryAll[invitationDocument](ctx, query)
	if err != nil {
		return nil, err
	}

	invitations := make([]*entity.BreakInvitation, 0, len(docs))
	for _, doc := range docs {
		invitations = append(invitations, toInvitationDomain(doc))
	}

	return invitations, nil
}

func (s *invitationStore) Put(ctx context.Context, invitation *entity.BreakInvitation) error {
	return translateError(s.coll.Put(ctx, fromInvitationDomain(invitation)), "failed to put remote invitation")
}

func (s *invitationStore) UpdateStatus(ctx context.Context, id string, status entity.BreakInvitationStatus, at time.Time) error {
	err := s.coll.Update(ctx, &invitationDocument{ID: id}, docstore.Mods{
		"status":     string(status),
		"updated_at": toMillis(at),
	})

	return translateError(err, "failed to update remote invitation status")
}

func (s *invitationStore) Delete(ctx context.Context, id string) error {
	return translateError(s.coll.Delete(ctx, &invitationDocument{ID: id}), "failed to delete remote invitation")
}
