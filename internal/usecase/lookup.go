package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
)

// LookupUsecase defines the business logic behind the
// autocomplete-with-create flow for the shared lookup entities.
type LookupUsecase interface {
	// Search returns entities of the kind whose name contains the query.
	Search(ctx context.Context, kind model.LookupKind, query string, limit int64) ([]*model.LookupEntity, error)

	// CreateOrGet resolves a name to its existing entity, creating one
	// only when no entity of the kind carries that name yet.
	CreateOrGet(ctx context.Context, kind model.LookupKind, name string) (*model.LookupEntity, error)

	// ResolveRefs turns a list of tag refs into entity ids: existing ids
	// are verified to exist, pending names are resolved or created. The
	// result is deduplicated by id.
	ResolveRefs(ctx context.Context, kind model.LookupKind, refs []payload.TagRef) ([]bson.ObjectID, error)
}

var (
	ErrInvalidLookupKind = errors.New("invalid lookup kind")
	ErrLookupNotFound    = errors.New("lookup entity not found")
	ErrInvalidTagRef     = errors.New("tag ref must carry exactly one of id or name")
)

type lookupUsecase struct {
	lookupRepo repository.LookupRepository
}

// NewLookupUsecase creates a new instance of LookupUsecase.
func NewLookupUsecase(lookupRepo repository.LookupRepository) LookupUsecase {
	return &lookupUsecase{lookupRepo: lookupRepo}
}

func (u *lookupUsecase) Search(
	ctx context.Context,
	kind model.LookupKind,
	query string,
	limit int64,
) ([]*model.LookupEntity, error) {
	if !kind.Valid() {
		return nil, ErrInvalidLookupKind
	}

	return u.lookupRepo.Search(ctx, kind, query, limit)
}

func (u *lookupUsecase) CreateOrGet(
	ctx context.Context,
	kind model.LookupKind,
	name string,
) (*model.LookupEntity, error) {
	if !kind.Valid() {
		return nil, ErrInvalidLookupKind
	}

	entity, err := u.lookupRepo.GetByName(ctx, kind, name)
	if err == nil {
		return entity, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	entity, err = u.lookupRepo.Create(ctx, kind, name)
	if err != nil {
		// A concurrent create won the unique name index; use theirs.
		if mongo.IsDuplicateKeyError(err) {
			return u.lookupRepo.GetByName(ctx, kind, name)
		}
		return nil, err
	}

	return entity, nil
}

func (u *lookupUsecase) ResolveRefs(
	ctx context.Context,
	kind model.LookupKind,
	refs []payload.TagRef,
) ([]bson.ObjectID, error) {
	if !kind.Valid() {
		return nil, ErrInvalidLookupKind
	}

	seen := make(map[bson.ObjectID]bool, len(refs))
	ids := make([]bson.ObjectID, 0, len(refs))
	var existing []bson.ObjectID

	for _, ref := range refs {
		switch {
		case ref.ID != nil && ref.Name == nil:
			id, err := bson.ObjectIDFromHex(*ref.ID)
			if err != nil {
				return nil, ErrLookupNotFound
			}
			existing = append(existing, id)
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}

		case ref.Pending():
			name := strings.TrimSpace(*ref.Name)
			if name == "" {
				return nil, ErrInvalidTagRef
			}
			entity, err := u.CreateOrGet(ctx, kind, name)
			if err != nil {
				return nil, err
			}
			if !seen[entity.ID] {
				seen[entity.ID] = true
				ids = append(ids, entity.ID)
			}

		default:
			return nil, ErrInvalidTagRef
		}
	}

	// Referenced ids must all exist; one batched read covers them.
	if len(existing) > 0 {
		found, err := u.lookupRepo.GetByIDs(ctx, kind, existing)
		if err != nil {
			return nil, err
		}

		foundSet := make(map[bson.ObjectID]bool, len(found))
		for _, entity := range found {
			foundSet[entity.ID] = true
		}
		for _, id := range existing {
			if !foundSet[id] {
				return nil, ErrLookupNotFound
			}
		}
	}

	return ids, nil
}
