package compat

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	apperrors "github.com/sdkgate/sdkgate/internal/platform/errors"
	"github.com/sdkgate/sdkgate/internal/platform/grpc/pagination"
	"github.com/sdkgate/sdkgate/internal/services/compat/adminauth"
	"github.com/sdkgate/sdkgate/internal/services/compat/buildinfo"
	"github.com/sdkgate/sdkgate/internal/services/compat/filter"
	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
	"github.com/sdkgate/sdkgate/internal/services/compat/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	defaultListChangesPageSize = 50
	maxListChangesPageSize     = 200
)

const (
	authorizationHeader = "authorization"
	bearerPrefix        = "bearer "
)

// Service exposes compat.v1 gRPC operations backed by the change registry.
//
// Reads resolve against the in-memory registry. Mutations are gated by the
// build policy: debuggable builds mutate freely, final builds require an
// admin grant.
type Service struct {
	compatv1.UnimplementedCompatServiceServer
	registry *registry.Registry
	store    storage.OverrideStore
	build    buildinfo.Classifier
	grants   adminauth.Config
	clock    func() time.Time
}

// NewService creates a compat service over a registry. The override store is
// optional; without one overrides live in memory only.
func NewService(reg *registry.Registry, store storage.OverrideStore, build buildinfo.Classifier, grants adminauth.Config) *Service {
	return &Service{
		registry: reg,
		store:    store,
		build:    build,
		grants:   grants,
		clock:    time.Now,
	}
}

// IsChangeEnabled reports whether one change is enabled for one app.
func (s *Service) IsChangeEnabled(ctx context.Context, in *compatv1.IsChangeEnabledRequest) (*compatv1.IsChangeEnabledResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "is change enabled request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	if err := validateChangeID(in.GetChangeId()); err != nil {
		return nil, handleDomainError(err)
	}
	app, err := appInfoFromProto(in.GetApp())
	if err != nil {
		return nil, handleDomainError(err)
	}

	enabled := s.registry.IsChangeEnabled(registry.ChangeID(in.GetChangeId()), app)
	return &compatv1.IsChangeEnabledResponse{Enabled: enabled}, nil
}

// GetDisabledChanges returns the ascending IDs of all changes disabled for
// one app.
func (s *Service) GetDisabledChanges(ctx context.Context, in *compatv1.GetDisabledChangesRequest) (*compatv1.GetDisabledChangesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get disabled changes request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	app, err := appInfoFromProto(in.GetApp())
	if err != nil {
		return nil, handleDomainError(err)
	}

	ids := s.registry.DisabledChanges(app)
	resp := &compatv1.GetDisabledChangesResponse{
		ChangeIds: make([]uint64, 0, len(ids)),
	}
	for _, id := range ids {
		resp.ChangeIds = append(resp.ChangeIds, uint64(id))
	}
	return resp, nil
}

// LookupChangeId resolves a change name to its ID, or -1 when unknown.
func (s *Service) LookupChangeId(ctx context.Context, in *compatv1.LookupChangeIdRequest) (*compatv1.LookupChangeIdResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "lookup change id request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	name := strings.TrimSpace(in.GetName())
	if name == "" {
		return nil, handleDomainError(apperrors.New(apperrors.CodeChangeNameEmpty, "change name is required"))
	}

	return &compatv1.LookupChangeIdResponse{ChangeId: s.registry.LookupChangeID(name)}, nil
}

// PutChange upserts one change definition.
func (s *Service) PutChange(ctx context.Context, in *compatv1.PutChangeRequest) (*compatv1.PutChangeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "put change request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}
	if in.GetChange() == nil {
		return nil, status.Error(codes.InvalidArgument, "change is required")
	}

	record, err := changeFromProto(in.GetChange())
	if err != nil {
		return nil, handleDomainError(err)
	}
	if err := s.authorizeMutation(ctx); err != nil {
		return nil, handleDomainError(err)
	}

	s.registry.AddChange(record)
	return &compatv1.PutChangeResponse{Change: changeToProto(record)}, nil
}

// SetOverride forces one change on or off for one package.
func (s *Service) SetOverride(ctx context.Context, in *compatv1.SetOverrideRequest) (*compatv1.SetOverrideResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set override request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	if err := validateChangeID(in.GetChangeId()); err != nil {
		return nil, handleDomainError(err)
	}
	packageName := strings.TrimSpace(in.GetPackageName())
	if packageName == "" {
		return nil, handleDomainError(apperrors.New(apperrors.CodePackageNameEmpty, "package name is required"))
	}
	if err := s.authorizeMutation(ctx); err != nil {
		return nil, handleDomainError(err)
	}

	// Persist before mutating memory so a storage failure leaves the
	// registry untouched.
	if s.store != nil {
		now := time.Now().UTC()
		if s.clock != nil {
			now = s.clock().UTC()
		}
		record := storage.Override{
			ChangeID:    in.GetChangeId(),
			PackageName: packageName,
			Enabled:     in.GetEnabled(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.PutOverride(ctx, record); err != nil {
			return nil, handleDomainError(apperrors.Wrap(apperrors.CodeStorageFailure, "persist override", err))
		}
	}

	s.registry.SetOverride(registry.ChangeID(in.GetChangeId()), packageName, in.GetEnabled())
	return &compatv1.SetOverrideResponse{}, nil
}

// RemoveOverride clears one override and reports whether one was present.
func (s *Service) RemoveOverride(ctx context.Context, in *compatv1.RemoveOverrideRequest) (*compatv1.RemoveOverrideResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "remove override request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	if err := validateChangeID(in.GetChangeId()); err != nil {
		return nil, handleDomainError(err)
	}
	packageName := strings.TrimSpace(in.GetPackageName())
	if packageName == "" {
		return nil, handleDomainError(apperrors.New(apperrors.CodePackageNameEmpty, "package name is required"))
	}
	if err := s.authorizeMutation(ctx); err != nil {
		return nil, handleDomainError(err)
	}

	if s.store != nil {
		if err := s.store.DeleteOverride(ctx, in.GetChangeId(), packageName); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, handleDomainError(apperrors.Wrap(apperrors.CodeStorageFailure, "delete override", err))
		}
	}

	removed := s.registry.RemoveOverride(registry.ChangeID(in.GetChangeId()), packageName)
	return &compatv1.RemoveOverrideResponse{Removed: removed}, nil
}

// ListChanges returns a filtered page of change definitions ordered by ID.
func (s *Service) ListChanges(ctx context.Context, in *compatv1.ListChangesRequest) (*compatv1.ListChangesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list changes request is required")
	}
	if s == nil || s.registry == nil {
		return nil, status.Error(codes.Internal, "change registry is not configured")
	}

	pred, err := filter.ParseListFilter(in.GetFilter())
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeFilterInvalid, "parse list filter", err))
	}

	afterID, hasAfter, err := pagination.ParseUint64Token(in.GetPageToken())
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodePageTokenInvalid, "page token must be a decimal change id", err))
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListChangesPageSize,
		Max:     maxListChangesPageSize,
	})

	matched := s.registry.ListChanges(func(c registry.Change) bool {
		if hasAfter && uint64(c.ID) <= afterID {
			return false
		}
		return pred == nil || pred(c)
	})

	capHint := len(matched)
	if pageSize < capHint {
		capHint = pageSize
	}
	resp := &compatv1.ListChangesResponse{
		Changes: make([]*compatv1.CompatChange, 0, capHint),
	}
	for i, record := range matched {
		if i == pageSize {
			resp.NextPageToken = pagination.EncodeUint64Token(uint64(matched[i-1].ID))
			break
		}
		resp.Changes = append(resp.Changes, changeToProto(record))
	}
	return resp, nil
}

// authorizeMutation enforces the build policy for mutating operations.
// Debuggable builds mutate freely. Final builds require a valid admin grant,
// and refuse outright when no grant verifier is configured.
func (s *Service) authorizeMutation(ctx context.Context) error {
	if s.build != nil && s.build.IsDebuggableBuild() {
		return nil
	}
	if !s.grants.Configured() {
		return apperrors.New(apperrors.CodeOverridesNotPermitted, "mutations are not permitted on this build")
	}

	grant := grantFromContext(ctx)
	if _, err := adminauth.VerifyGrant(grant, s.grants); err != nil {
		return err
	}
	return nil
}

// grantFromContext extracts the bearer grant from incoming metadata.
func grantFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(authorizationHeader)
	if len(values) == 0 {
		return ""
	}
	value := strings.TrimSpace(values[0])
	if len(value) >= len(bearerPrefix) && strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(value[len(bearerPrefix):])
	}
	return value
}

func validateChangeID(id uint64) error {
	if id == 0 {
		return apperrors.New(apperrors.CodeChangeIDRequired, "change id is required")
	}
	return nil
}

func appInfoFromProto(app *compatv1.AppInfo) (registry.AppInfo, error) {
	packageName := strings.TrimSpace(app.GetPackageName())
	if packageName == "" {
		return registry.AppInfo{}, apperrors.New(apperrors.CodePackageNameEmpty, "package name is required")
	}
	if app.GetTargetSdkVersion() < 0 {
		return registry.AppInfo{}, apperrors.WithMetadata(apperrors.CodeTargetSdkInvalid, "target sdk version must not be negative", map[string]string{
			"target_sdk_version": strconv.FormatInt(int64(app.GetTargetSdkVersion()), 10),
		})
	}
	return registry.AppInfo{
		PackageName:      packageName,
		TargetSDKVersion: app.GetTargetSdkVersion(),
	}, nil
}

func changeFromProto(change *compatv1.CompatChange) (registry.Change, error) {
	if change.GetId() == 0 {
		return registry.Change{}, apperrors.New(apperrors.CodeChangeIDRequired, "change id is required")
	}
	name := strings.TrimSpace(change.GetName())
	if name == "" {
		return registry.Change{}, apperrors.New(apperrors.CodeChangeNameEmpty, "change name is required")
	}
	if change.GetEnableAfterTargetSdk() < registry.UngatedSDK {
		return registry.Change{}, apperrors.WithMetadata(apperrors.CodeChangeGateInvalid, "enable after target sdk must be -1 or a valid sdk version", map[string]string{
			"enable_after_target_sdk": strconv.FormatInt(int64(change.GetEnableAfterTargetSdk()), 10),
		})
	}
	return registry.Change{
		ID:                   registry.ChangeID(change.GetId()),
		Name:                 name,
		EnableAfterTargetSDK: change.GetEnableAfterTargetSdk(),
		Disabled:             change.GetDisabled(),
		Description:          strings.TrimSpace(change.GetDescription()),
	}, nil
}

func changeToProto(record registry.Change) *compatv1.CompatChange {
	return &compatv1.CompatChange{
		Id:                   uint64(record.ID),
		Name:                 record.Name,
		EnableAfterTargetSdk: record.EnableAfterTargetSDK,
		Disabled:             record.Disabled,
		Description:          record.Description,
	}
}

// handleDomainError converts domain errors to gRPC status using the
// structured error system.
func handleDomainError(err error) error {
	return apperrors.HandleError(err)
}
