package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/octobees/user-registry/internal/entity"
)

// ErrUserNotFound is returned when no user matches the lookup criteria.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailDuplicate = errors.New("email already registered")
)

// UserPatch lists the fields touched by a partial update. A nil pointer
// leaves the stored field untouched.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	ProjectID    *string
	PhoneNumber  *string
	CompanyName  *string
	Hashtag      *string
}

// updates translates the patch into Firestore field updates, in document
// field order.
func (p UserPatch) updates() []firestore.Update {
	fields := []struct {
		path  string
		value *string
	}{
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"email", p.Email},
		{"password", p.PasswordHash},
		{"project_id", p.ProjectID},
		{"phone_number", p.PhoneNumber},
		{"company_name", p.CompanyName},
		{"hashtag", p.Hashtag},
	}

	var updates []firestore.Update
	for _, f := range fields {
		if f.value != nil {
			updates = append(updates, firestore.Update{Path: f.path, Value: *f.value})
		}
	}
	return updates
}

// UsersRepository declares the operations of the user record store.
type UsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// FirestoreUsersRepository implements UsersRepository on a Firestore collection.
type FirestoreUsersRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreUsersRepository instantiates a users repository.
func NewFirestoreUsersRepository(client *firestore.Client, collection string) *FirestoreUsersRepository {
	return &FirestoreUsersRepository{client: client, collection: collection}
}

func (r *FirestoreUsersRepository) users() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

// FindByEmail fetches a user by email if present.
func (r *FirestoreUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user document: %w", err)
	}
	return &user, nil
}

// FindByID retrieves a user by identifier.
func (r *FirestoreUsersRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user document: %w", err)
	}
	return &user, nil
}

// Create persists a new user document keyed by its identifier.
//
// The email-uniqueness guard is a read before the write, not a storage
// constraint, so two concurrent creates with the same email can race.
func (r *FirestoreUsersRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.Email != nil && *user.Email != "" {
		_, err := r.FindByEmail(ctx, *user.Email)
		if err == nil {
			return nil, ErrEmailDuplicate
		}
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	if _, err := r.users().Doc(user.ID).Set(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// List returns every stored user in store-native (document id) order.
func (r *FirestoreUsersRepository) List(ctx context.Context) ([]entity.User, error) {
	iter := r.users().Documents(ctx)
	defer iter.Stop()

	var users []entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user document: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// Update merges the supplied fields into an existing document and returns
// the merged record.
func (r *FirestoreUsersRepository) Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error) {
	ref := r.users().Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	updates := patch.updates()
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Delete removes a user document permanently.
func (r *FirestoreUsersRepository) Delete(ctx context.Context, id string) error {
	ref := r.users().Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

var _ UsersRepository = (*FirestoreUsersRepository)(nil)
