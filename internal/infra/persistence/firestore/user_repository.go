package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed UserRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID reads users/{uid}.
func (r *userRepository) FindByID(ctx context.Context, uid string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to get user %s", uid)
	}

	user := new(entity.User)
	if err := doc.DataTo(user); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", uid)
	}
	user.ID = doc.Ref.ID

	return user, nil
}

// Create writes users/{uid}. Set keeps the lazy creation idempotent when two
// sessions race on first sign-in.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user); err != nil {
		return errors.Wrapf(err, "failed to create user %s", user.ID)
	}

	return nil
}

// List retrieves all user records, newest first.
func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).
		OrderBy(createdAtField, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate users")
		}

		user := new(entity.User)
		if err := doc.DataTo(user); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", doc.Ref.ID)
		}
		user.ID = doc.Ref.ID
		users = append(users, user)
	}

	return users, nil
}
