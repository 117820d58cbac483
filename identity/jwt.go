package identity

import (
	"crypto/md5"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/store"
)

var log = logrus.WithField("prefix", "identity")

// JWTProvider issues RS256 tokens whose id is a session stored in the
// relational store. Passwords are kept as bcrypt hashes.
type JWTProvider struct {
	store      store.InnerCore
	key        *rsa.PrivateKey
	expire     time.Duration
	bcryptCost int
	issuer     string

	now func() time.Time
}

func NewJWTProvider(s store.InnerCore, key *rsa.PrivateKey, expire time.Duration) *JWTProvider {
	pubkeyMd5sum := md5.Sum(x509.MarshalPKCS1PublicKey(&key.PublicKey))

	return &JWTProvider{
		store:      s,
		key:        key,
		expire:     expire,
		bcryptCost: bcrypt.DefaultCost,
		issuer:     base64.StdEncoding.EncodeToString(pubkeyMd5sum[:]),
		now:        time.Now,
	}
}

// SetBcryptCost changes the hashing cost of new passwords
func (p *JWTProvider) SetBcryptCost(cost int) {
	p.bcryptCost = cost
}

func (p *JWTProvider) SignUp(email, password string) (*Token, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrMissingPassword
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return nil, err
	}

	a, err := p.store.CreateAccount(email, string(hash))
	if err != nil {
		if err == store.ErrAccountTaken {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	log.WithField("uid", a.ID).Info("account created")
	return p.issue(a)
}

func (p *JWTProvider) SignIn(email, password string) (*Token, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	a, err := p.store.GetAccountByEmail(email)
	if err != nil {
		if err == store.ErrAccountNotFound {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PassHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	return p.issue(a)
}

// SignOut revokes a session. Tokens of the session are rejected afterwards.
func (p *JWTProvider) SignOut(sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return ErrInvalidToken
	}

	if err := p.store.RevokeSession(id); err != nil {
		if err == store.ErrSessionNotFound {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

// CurrentUser verifies a token and its session
func (p *JWTProvider) CurrentUser(tokenString string) (*Identity, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &p.key.PublicKey, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrSessionExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	sessionID, err := uuid.Parse(claims.Id)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := p.store.GetSession(sessionID)
	if err != nil {
		if err == store.ErrSessionNotFound {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if session.AccountID.String() != claims.Subject {
		return nil, ErrInvalidToken
	}
	if !session.Active(p.now()) {
		return nil, ErrSessionExpired
	}

	return &Identity{
		UID:       claims.Subject,
		SessionID: claims.Id,
	}, nil
}

func (p *JWTProvider) issue(a *schema.Account) (*Token, error) {
	now := p.now()
	exp := now.Add(p.expire)

	session, err := p.store.CreateSession(a.ID, exp)
	if err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Issuer:    p.issuer,
		Subject:   a.ID.String(),
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        session.ID.String(),
	})

	tokenString, err := token.SignedString(p.key)
	if err != nil {
		return nil, err
	}

	return &Token{
		Token:     tokenString,
		UID:       a.ID.String(),
		SessionID: session.ID.String(),
		ExpiresAt: exp,
	}, nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}
