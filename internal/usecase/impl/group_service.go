package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	inviteCodeLength   = 6
	inviteCodeAttempts = 5
	maxGroupMembers    = 500

	// refreshConcurrency bounds the parallel chunk fetches of a single refresh.
	refreshConcurrency = 4
	refreshTimeout     = 30 * time.Second
)

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager     repository.TransactionManager
	groupRepo     repository.GroupRepository
	memberRepo    repository.MemberRepository
	remoteGroups  repository.RemoteGroupStore
	remoteMembers repository.RemoteMemberStore
	qrCodes       service.QRCodeService
	clock         service.Clock
	logger        *slog.Logger

	members  membershipChecker
	users    userCache
	refresh  singleflight.Group
	inflight sync.WaitGroup
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	GroupRepo     repository.GroupRepository
	MemberRepo    repository.MemberRepository
	UserRepo      repository.UserRepository
	RemoteGroups  repository.RemoteGroupStore
	RemoteMembers repository.RemoteMemberStore
	RemoteUsers   repository.RemoteUserStore
	QRCodes       service.QRCodeService
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewGroupService creates a new group service.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return newGroupService(params)
}

func newGroupService(params GroupServiceParams) *groupService {
	return &groupService{
		txManager:     params.TxManager,
		groupRepo:     params.GroupRepo,
		memberRepo:    params.MemberRepo,
		remoteGroups:  params.RemoteGroups,
		remoteMembers: params.RemoteMembers,
		qrCodes:       params.QRCodes,
		clock:         params.Clock,
		logger:        params.Logger,
		members:       membershipChecker{remote: params.RemoteMembers, local: params.MemberRepo},
		users:         userCache{remote: params.RemoteUsers, local: params.UserRepo},
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *groupService) Create(ctx context.Context, userID string, input *usecase.CreateGroupInput) (*entity.GroupWithMembers, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("group name is required")
	}

	maxMembers := input.MaxMembers
	if maxMembers == 0 {
		maxMembers = entity.DefaultMaxMembers
	}
	if maxMembers < 1 || maxMembers > maxGroupMembers {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("max members must be between 1 and 500")
	}

	code, err := srv.newInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	group := &entity.GroupWithMembers{
		Group: entity.Group{
			ID:          uuid.NewString(),
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			IsPublic:    input.IsPublic,
			CreatedBy:   userID,
			InviteCode:  code,
			MaxMembers:  maxMembers,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Members: []entity.Member{{
			UserID:   userID,
			Role:     entity.GroupRoleAdmin,
			JoinedAt: now,
			IsActive: true,
		}},
	}
	group.Members[0].GroupID = group.Group.ID

	if err := srv.remoteGroups.Put(ctx, &group.Group); err != nil {
		return nil, remoteError(err, nil, "failed to create group")
	}
	if err := srv.remoteMembers.Put(ctx, &group.Members[0]); err != nil {
		return nil, remoteError(err, nil, "failed to add group creator")
	}

	if err := srv.cacheGroups(ctx, group); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Group created",
		slog.String("group_id", group.Group.ID),
		slog.String("created_by", userID),
	)

	return group, nil
}

// newInviteCode draws random codes until one is unused by an active group.
func (srv *groupService) newInviteCode(ctx context.Context) (string, error) {
	for range inviteCodeAttempts {
		code := rand.Text()[:inviteCodeLength]

		_, err := srv.remoteGroups.FindByInviteCode(ctx, code)
		if errors.Is(err, repository.ErrRemoteNotFound) {
			return code, nil
		}
		if err != nil {
			return "", remoteError(err, nil, "failed to check invite code")
		}
	}

	return "", errors.Wrap(domainerrors.ErrInternalError.WithDetails("invite code space exhausted"), "failed to generate invite code")
}

func (srv *groupService) Update(ctx context.Context, userID, groupID string, input *usecase.UpdateGroupInput) (*entity.GroupWithMembers, error) {
	if _, err := srv.members.requireAdmin(ctx, groupID, userID); err != nil {
		return nil, err
	}

	group, err := srv.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("group name cannot be empty")
		}
		group.Group.Name = name
	}
	if input.Description != nil {
		group.Group.Description = strings.TrimSpace(*input.Description)
	}
	if input.IsPublic != nil {
		group.Group.IsPublic = *input.IsPublic
	}
	if input.MaxMembers != nil {
		maxMembers := *input.MaxMembers
		if maxMembers < 1 || maxMembers > maxGroupMembers {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("max members must be between 1 and 500")
		}
		if maxMembers < group.ActiveMemberCount() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("max members is below the current member count")
		}
		group.Group.MaxMembers = maxMembers
	}
	group.Group.UpdatedAt = srv.clock.Now()

	if err := srv.remoteGroups.Put(ctx, &group.Group); err != nil {
		return nil, remoteError(err, nil, "failed to update group")
	}
	if err := srv.groupRepo.Upsert(ctx, &group.Group); err != nil {
		return nil, errors.Wrap(err, "failed to cache group")
	}

	return group, nil
}

func (srv *groupService) Deactivate(ctx context.Context, userID, groupID string) error {
	if _, err := srv.members.requireAdmin(ctx, groupID, userID); err != nil {
		return err
	}

	if err := srv.remoteGroups.UpdateActive(ctx, groupID, false, srv.clock.Now()); err != nil {
		return remoteError(err, domainerrors.ErrGroupNotFound, "failed to deactivate group")
	}

	if err := srv.groupRepo.Deactivate(ctx, groupID); err != nil && !errors.Is(err, repository.ErrGroupNotFound) {
		return errors.Wrap(err, "failed to deactivate cached group")
	}

	srv.log(ctx).Info("Group deactivated", slog.String("group_id", groupID), slog.String("user_id", userID))

	return nil
}

// Delete removes the group document and every membership document, then the cached rows.
func (srv *groupService) Delete(ctx context.Context, userID, groupID string) error {
	group, err := srv.remoteGroups.Get(ctx, groupID)
	if err != nil {
		return remoteError(err, domainerrors.ErrGroupNotFound, "failed to load group")
	}
	if group.CreatedBy != userID {
		return domainerrors.ErrNotGroupCreator
	}

	members, err := srv.remoteMembers.FindByGroup(ctx, groupID)
	if err != nil {
		return remoteError(err, nil, "failed to list group members")
	}
	for _, m := range members {
		if err := srv.remoteMembers.Delete(ctx, m.GroupID, m.UserID); err != nil {
			return remoteError(err, nil, "failed to delete membership")
		}
	}

	if err := srv.remoteGroups.Delete(ctx, groupID); err != nil {
		return remoteError(err, domainerrors.ErrGroupNotFound, "failed to delete group")
	}

	if err := srv.groupRepo.Delete(ctx, groupID); err != nil && !errors.Is(err, repository.ErrGroupNotFound) {
		return errors.Wrap(err, "failed to delete cached group")
	}

	srv.log(ctx).Info("Group deleted",
		slog.String("group_id", groupID),
		slog.Int("members", len(members)),
	)

	return nil
}

func (srv *groupService) JoinByInviteCode(ctx context.Context, userID, code string) (*entity.GroupWithMembers, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domainerrors.ErrInviteCodeInvalid
	}

	group, err := srv.remoteGroups.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, remoteError(err, domainerrors.ErrInviteCodeInvalid, "failed to find group by invite code")
	}
	if !group.IsActive {
		return nil, domainerrors.ErrGroupInactive
	}

	members, err := srv.remoteMembers.FindByGroup(ctx, group.ID)
	if err != nil {
		return nil, remoteError(err, nil, "failed to list group members")
	}

	joined := &entity.GroupWithMembers{Group: *group}
	for _, m := range members {
		joined.Members = append(joined.Members, *m)
	}

	if existing := joined.FindMember(userID); existing != nil && existing.IsActive {
		return nil, domainerrors.ErrAlreadyGroupMember
	}
	if joined.ActiveMemberCount() >= group.MaxMembers {
		return nil, domainerrors.ErrGroupFull
	}

	member := entity.Member{
		UserID:   userID,
		GroupID:  group.ID,
		Role:     entity.GroupRoleMember,
		JoinedAt: srv.clock.Now(),
		IsActive: true,
	}
	if err := srv.remoteMembers.Put(ctx, &member); err != nil {
		return nil, remoteError(err, nil, "failed to join group")
	}

	if existing := joined.FindMember(userID); existing != nil {
		*existing = member
	} else {
		joined.Members = append(joined.Members, member)
	}

	if err := srv.cacheGroups(ctx, joined); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User joined group",
		slog.String("group_id", group.ID),
		slog.String("user_id", userID),
	)

	return joined, nil
}

func (srv *groupService) JoinByQRCode(ctx context.Context, userID, qrData string) (*entity.GroupWithMembers, error) {
	code, err := srv.qrCodes.ParseGroupInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInviteCodeInvalid.WithDetails(err.Error())
	}

	return srv.JoinByInviteCode(ctx, userID, code)
}

func (srv *groupService) Leave(ctx context.Context, userID, groupID string) error {
	member, err := srv.members.require(ctx, groupID, userID)
	if err != nil {
		return err
	}

	if member.IsAdmin() {
		if err := srv.checkAdminRemains(ctx, groupID, userID); err != nil {
			return err
		}
	}

	return srv.dropMember(ctx, groupID, userID)
}

// checkAdminRemains rejects a change that would leave other active members without an admin.
func (srv *groupService) checkAdminRemains(ctx context.Context, groupID, leavingAdminID string) error {
	members, err := srv.remoteMembers.FindByGroup(ctx, groupID)
	if err != nil {
		return remoteError(err, nil, "failed to list group members")
	}

	others, otherAdmins := 0, 0
	for _, m := range members {
		if m.UserID == leavingAdminID || !m.IsActive {
			continue
		}
		others++
		if m.IsAdmin() {
			otherAdmins++
		}
	}

	if others > 0 && otherAdmins == 0 {
		return domainerrors.ErrLastAdmin
	}

	return nil
}

func (srv *groupService) dropMember(ctx context.Context, groupID, userID string) error {
	if err := srv.remoteMembers.Delete(ctx, groupID, userID); err != nil {
		return remoteError(err, domainerrors.ErrMemberNotFound, "failed to remove member")
	}

	if err := srv.memberRepo.Delete(ctx, userID, groupID); err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return errors.Wrap(err, "failed to remove cached member")
	}

	srv.log(ctx).Info("Member removed from group",
		slog.String("group_id", groupID),
		slog.String("user_id", userID),
	)

	return nil
}

func (srv *groupService) SetMemberRole(ctx context.Context, userID, groupID, memberID string, role entity.GroupRole) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("role must be ADMIN or MEMBER")
	}

	if _, err := srv.members.requireAdmin(ctx, groupID, userID); err != nil {
		return err
	}

	target, err := srv.remoteMembers.Get(ctx, groupID, memberID)
	if err != nil {
		return remoteError(err, domainerrors.ErrMemberNotFound, "failed to load member")
	}
	if target.Role == role {
		return nil
	}
	if target.IsAdmin() && role == entity.GroupRoleMember {
		if err := srv.checkAdminRemains(ctx, groupID, memberID); err != nil {
			return err
		}
	}

	if err := srv.remoteMembers.UpdateRole(ctx, groupID, memberID, role); err != nil {
		return remoteError(err, domainerrors.ErrMemberNotFound, "failed to update member role")
	}

	target.Role = role
	if err := srv.memberRepo.Update(ctx, target); err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return errors.Wrap(err, "failed to cache member role")
	}

	return nil
}

func (srv *groupService) RemoveMember(ctx context.Context, userID, groupID, memberID string) error {
	if memberID == userID {
		return srv.Leave(ctx, userID, groupID)
	}

	if _, err := srv.members.requireAdmin(ctx, groupID, userID); err != nil {
		return err
	}

	return srv.dropMember(ctx, groupID, memberID)
}

func (srv *groupService) InviteQRCode(ctx context.Context, userID, groupID string) ([]byte, error) {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return nil, err
	}

	group, err := srv.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.Group.IsActive {
		return nil, domainerrors.ErrGroupInactive
	}

	png, err := srv.qrCodes.GenerateGroupInviteQR(group.Group.ID, group.Group.InviteCode)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to render invite QR code")
	}

	return png, nil
}

func (srv *groupService) Get(ctx context.Context, userID, groupID string) (*entity.GroupWithMembers, error) {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return nil, err
	}

	return srv.loadGroup(ctx, groupID)
}

// loadGroup reads the group and its members through the remote store, caching the result.
// A remote transport failure falls back to the cached copy.
func (srv *groupService) loadGroup(ctx context.Context, groupID string) (*entity.GroupWithMembers, error) {
	group, err := srv.remoteGroups.Get(ctx, groupID)
	if err == nil {
		var members []*entity.Member
		members, err = srv.remoteMembers.FindByGroup(ctx, groupID)
		if err == nil {
			loaded := &entity.GroupWithMembers{Group: *group}
			for _, m := range members {
				loaded.Members = append(loaded.Members, *m)
			}

			if err := srv.cacheGroups(ctx, loaded); err != nil {
				return nil, err
			}

			return loaded, nil
		}
	}

	if !isRemoteUnavailable(err) {
		return nil, remoteError(err, domainerrors.ErrGroupNotFound, "group not found")
	}

	srv.log(ctx).Warn("Remote store unavailable, serving cached group",
		slog.String("group_id", groupID),
		slog.Any("error", err),
	)

	cached, localErr := srv.groupRepo.FindWithMembersByID(ctx, groupID)
	if localErr != nil {
		return nil, remoteError(err, nil, "failed to fetch group")
	}

	return cached, nil
}

// cacheGroups writes groups and their members to the local cache in one transaction.
// Members whose user cannot be fetched are left out, since the local member row needs its user.
func (srv *groupService) cacheGroups(ctx context.Context, groups ...*entity.GroupWithMembers) error {
	var userIDs []string
	for _, g := range groups {
		for _, m := range g.Members {
			userIDs = append(userIDs, m.UserID)
		}
	}

	available, err := srv.users.ensure(ctx, userIDs)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		groupRepo := factory.NewGroupRepository()
		for _, g := range groups {
			cached := &entity.GroupWithMembers{Group: g.Group}
			for _, m := range g.Members {
				if _, ok := available[m.UserID]; ok {
					cached.Members = append(cached.Members, m)
				}
			}

			if err := groupRepo.UpsertWithMembers(ctx, cached); err != nil {
				return errors.Wrapf(err, "failed to cache group %s", g.Group.ID)
			}
		}

		return nil
	})
}

// CachedGroups reads the local cache only.
func (srv *groupService) CachedGroups(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error) {
	groups, err := srv.groupRepo.FindWithMembersForUser(ctx, userID)

	return groups, errors.Wrap(err, "failed to list cached groups")
}

// MyGroups serves the cache and starts a refresh that outlives the request.
func (srv *groupService) MyGroups(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error) {
	groups, err := srv.CachedGroups(ctx, userID)
	if err != nil {
		return nil, err
	}

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()

		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		if err := srv.RefreshMyGroups(refreshCtx, userID); err != nil {
			srv.log(ctx).Warn("Background group refresh failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
	}()

	return groups, nil
}

// RefreshMyGroups is deduplicated per user: concurrent callers share one remote fetch.
func (srv *groupService) RefreshMyGroups(ctx context.Context, userID string) error {
	_, err, _ := srv.refresh.Do(userID, func() (any, error) {
		return nil, srv.refreshMyGroups(ctx, userID)
	})

	return err
}

func (srv *groupService) refreshMyGroups(ctx context.Context, userID string) error {
	memberships, err := srv.remoteMembers.FindByUser(ctx, userID)
	if err != nil {
		return remoteError(err, nil, "failed to list memberships")
	}

	groupIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		if m.IsActive {
			groupIDs = append(groupIDs, m.GroupID)
		}
	}
	groupIDs = uniqueStrings(groupIDs)

	chunks := chunk(groupIDs, repository.RemoteBatchLimit)
	results := make([][]*entity.GroupWithMembers, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)
	for idx, ids := range chunks {
		g.Go(func() error {
			fetched, err := srv.fetchChunk(gctx, ids)
			if err != nil {
				return err
			}
			results[idx] = fetched

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var groups []*entity.GroupWithMembers
	for _, r := range results {
		groups = append(groups, r...)
	}

	if len(groups) > 0 {
		if err := srv.cacheGroups(ctx, groups...); err != nil {
			return err
		}
	}

	if err := srv.dropStaleMemberships(ctx, userID, groupIDs); err != nil {
		return err
	}

	srv.log(ctx).Debug("Groups refreshed",
		slog.String("user_id", userID),
		slog.Int("groups", len(groups)),
		slog.Int("chunks", len(chunks)),
	)

	return nil
}

// fetchChunk loads at most RemoteBatchLimit groups together with their members.
func (srv *groupService) fetchChunk(ctx context.Context, ids []string) ([]*entity.GroupWithMembers, error) {
	groups, err := srv.remoteGroups.GetMany(ctx, ids)
	if err != nil {
		return nil, remoteError(err, nil, "failed to fetch groups")
	}

	members, err := srv.remoteMembers.FindByGroups(ctx, ids)
	if err != nil {
		return nil, remoteError(err, nil, "failed to fetch group members")
	}

	byGroup := make(map[string][]entity.Member, len(groups))
	for _, m := range members {
		byGroup[m.GroupID] = append(byGroup[m.GroupID], *m)
	}

	fetched := make([]*entity.GroupWithMembers, 0, len(groups))
	for _, group := range groups {
		fetched = append(fetched, &entity.GroupWithMembers{
			Group:   *group,
			Members: byGroup[group.ID],
		})
	}

	return fetched, nil
}

// dropStaleMemberships removes cached memberships of userID for groups the remote store no longer lists.
func (srv *groupService) dropStaleMemberships(ctx context.Context, userID string, remoteGroupIDs []string) error {
	keep := make(map[string]struct{}, len(remoteGroupIDs))
	for _, id := range remoteGroupIDs {
		keep[id] = struct{}{}
	}

	cached, err := srv.memberRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list cached memberships")
	}

	for _, m := range cached {
		if _, ok := keep[m.GroupID]; ok {
			continue
		}
		if err := srv.memberRepo.Delete(ctx, userID, m.GroupID); err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
			return errors.Wrap(err, "failed to drop stale membership")
		}
	}

	return nil
}

// waitRefreshes blocks until background refreshes started by MyGroups have finished.
func (srv *groupService) waitRefreshes() {
	srv.inflight.Wait()
}

func (srv *groupService) PublicGroups(ctx context.Context) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindPublic(ctx)

	return groups, errors.Wrap(err, "failed to list public groups")
}

func (srv *groupService) SearchGroups(ctx context.Context, query string) ([]*entity.Group, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return srv.PublicGroups(ctx)
	}

	groups, err := srv.groupRepo.SearchByName(ctx, query)

	return groups, errors.Wrap(err, "failed to search groups")
}

func (srv *groupService) GroupsCreatedBy(ctx context.Context, userID string) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindCreatedBy(ctx, userID)

	return groups, errors.Wrap(err, "failed to list groups created by user")
}

func (srv *groupService) CountActiveGroups(ctx context.Context) (int64, error) {
	count, err := srv.groupRepo.CountActive(ctx)

	return count, errors.Wrap(err, "failed to count active groups")
}
