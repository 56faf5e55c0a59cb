package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const profileCollection = "profiles"

// ProfileRepository stores account profiles in the profiles collection.
// It is the only concrete identity/profile backend.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Username     string             `bson:"username,omitempty"`
	Avatar       string             `bson:"avatar,omitempty"`
	Bio          string             `bson:"bio,omitempty"`
	University   string             `bson:"university,omitempty"`
	Type         string             `bson:"type"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	doc := mongoProfile{
		Email:        p.Email,
		Username:     p.Username,
		Avatar:       p.Avatar,
		Bio:          p.Bio,
		University:   p.University,
		Type:         string(p.Type),
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.Unix(),
		UpdatedAt:    p.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	// fetch back to get the assigned id
	return r.FindByEmail(ctx, p.Email)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

// Update merges the non-nil fields into the stored document and returns
// the merged profile.
func (r *ProfileRepository) Update(ctx context.Context, id string, u ports.ProfileUpdate) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if u.Username != nil {
		set["username"] = *u.Username
	}
	if u.Avatar != nil {
		set["avatar"] = *u.Avatar
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}

	var mp mongoProfile
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the unique email index guarding against duplicate
// accounts.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mp *mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           mp.ID.Hex(),
		Email:        mp.Email,
		Username:     mp.Username,
		Avatar:       mp.Avatar,
		Bio:          mp.Bio,
		University:   mp.University,
		Type:         domain.UserType(mp.Type),
		PasswordHash: mp.PasswordHash,
		CreatedAt:    unixToTime(mp.CreatedAt),
		UpdatedAt:    unixToTime(mp.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
