package impl

import (
	"context"
	"slices"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"

	"github.com/pkg/errors"
)

// remoteError translates a remote store failure. notFound is used for a missing document.
func remoteError(err error, notFound *domainerrors.BaseError, msg string) error {
	if errors.Is(err, repository.ErrRemoteNotFound) && notFound != nil {
		return notFound.WrapMessage(msg)
	}

	return errors.Wrap(domainerrors.ErrRemoteStoreFailed.WithDetails(err.Error()), msg)
}

// isRemoteUnavailable reports whether a read may fall back to the local cache.
func isRemoteUnavailable(err error) bool {
	return err != nil && !errors.Is(err, repository.ErrRemoteNotFound)
}

// chunk splits ids into slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for batch := range slices.Chunk(ids, size) {
		chunks = append(chunks, batch)
	}

	return chunks
}

// membershipChecker answers "is this user an active member of that group", preferring the remote store.
type membershipChecker struct {
	remote repository.RemoteMemberStore
	local  repository.MemberRepository
}

func (m membershipChecker) require(ctx context.Context, groupID, userID string) (*entity.Member, error) {
	member, err := m.remote.Get(ctx, groupID, userID)
	if isRemoteUnavailable(err) {
		member, err = m.local.Find(ctx, userID, groupID)
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrNotGroupMember
		}
	}
	if errors.Is(err, repository.ErrRemoteNotFound) {
		return nil, domainerrors.ErrNotGroupMember
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to check membership")
	}

	if !member.IsActive {
		return nil, domainerrors.ErrNotGroupMember
	}

	return member, nil
}

func (m membershipChecker) requireAdmin(ctx context.Context, groupID, userID string) (*entity.Member, error) {
	member, err := m.require(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	if !member.IsAdmin() {
		return nil, domainerrors.ErrNotGroupAdmin
	}

	return member, nil
}

// userCache makes sure user rows exist locally before rows referencing them are written.
type userCache struct {
	remote repository.RemoteUserStore
	local  repository.UserRepository
}

// ensure caches the missing users and returns the IDs now present locally.
// Users absent from both stores are left out.
func (c userCache) ensure(ctx context.Context, ids []string) (map[string]struct{}, error) {
	ids = uniqueStrings(ids)
	if len(ids) == 0 {
		return map[string]struct{}{}, nil
	}

	cached, err := c.local.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached users")
	}

	have := make(map[string]struct{}, len(cached))
	for _, u := range cached {
		have[u.ID] = struct{}{}
	}

	missing := make([]string, 0, len(ids)-len(cached))
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}

	for _, batch := range chunk(missing, repository.RemoteBatchLimit) {
		users, err := c.remote.GetMany(ctx, batch)
		if err != nil {
			return nil, remoteError(err, nil, "failed to fetch users")
		}

		for _, user := range users {
			if err := c.local.Upsert(ctx, user); err != nil {
				return nil, errors.Wrap(err, "failed to cache user")
			}
			have[user.ID] = struct{}{}
		}
	}

	return have, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
