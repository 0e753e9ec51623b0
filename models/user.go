package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/utils"
)

// Credential holds the password material: hash = sha256(salt || password).
type Credential struct {
	Salt string `bson:"salt" json:"salt"`
	Hash string `bson:"hash" json:"hash"`
}

// SessionToken is one valid session for a user. Only the token's hash is
// stored; a record with RevokedAt set no longer authenticates.
type SessionToken struct {
	Hash      string     `bson:"hash" json:"hash"`
	IssuedAt  time.Time  `bson:"issued_at" json:"issued_at"`
	RevokedAt *time.Time `bson:"revoked_at,omitempty" json:"revoked_at,omitempty"`
}

// User represents a platform user. A user becomes a provider by enabling
// provider mode; there is no separate provider account type.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Province     string             `bson:"province,omitempty" json:"province,omitempty"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	ProviderMode bool               `bson:"provider_mode" json:"provider_mode"`
	Credential   Credential         `bson:"credential" json:"-"`
	Tokens       []SessionToken     `bson:"tokens" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasActiveToken reports whether the user holds an unrevoked session token
// with the given hash.
func (u *User) HasActiveToken(hash string) bool {
	for _, t := range u.Tokens {
		if t.Hash == hash && t.RevokedAt == nil {
			return true
		}
	}
	return false
}

// View renders the user for API output with the credential material and
// token set withheld.
func (u *User) View() bson.M {
	doc := utils.Serialize(u)
	if doc == nil {
		return nil
	}
	delete(doc, "credential")
	delete(doc, "tokens")
	return doc
}
