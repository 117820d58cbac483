package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/store/mocks"
)

var (
	keyOnce sync.Once
	testKey *rsa.PrivateKey
)

func signingKey(t *testing.T) *rsa.PrivateKey {
	keyOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatal(err)
		}
		testKey = k
	})
	return testKey
}

func newTestProvider(t *testing.T, s store.InnerCore) *JWTProvider {
	p := NewJWTProvider(s, signingKey(t), time.Hour)
	p.SetBcryptCost(bcrypt.MinCost)
	return p
}

func TestSignUpAndCurrentUser(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	accountID := uuid.New()
	session := schema.Session{ID: uuid.New(), AccountID: accountID}

	s.EXPECT().CreateAccount("ani@example.com", gomock.Any()).DoAndReturn(
		func(email, hash string) (*schema.Account, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
			return &schema.Account{ID: accountID, Email: email, PassHash: hash}, nil
		}).Times(1)
	s.EXPECT().CreateSession(accountID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, expiresAt time.Time) (*schema.Session, error) {
			session.ExpiresAt = expiresAt
			return &session, nil
		}).Times(1)

	token, err := p.SignUp("Ani@Example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, accountID.String(), token.UID)
	assert.Equal(t, session.ID.String(), token.SessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	s.EXPECT().GetSession(session.ID).Return(&session, nil).Times(1)

	id, err := p.CurrentUser(token.Token)
	assert.NoError(t, err)
	assert.Equal(t, accountID.String(), id.UID)
	assert.Equal(t, session.ID.String(), id.SessionID)
}

func TestSignUpValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := newTestProvider(t, mocks.NewMockInnerCore(ctl))

	cases := []struct {
		email, password string
		err             error
	}{
		{"", "secret123", ErrInvalidEmail},
		{"not-an-email", "secret123", ErrInvalidEmail},
		{"ani@localhost", "secret123", ErrInvalidEmail},
		{"Ani <ani@example.com>", "secret123", ErrInvalidEmail},
		{"ani@example.com", "", ErrMissingPassword},
		{"ani@example.com", "12345", ErrWeakPassword},
	}

	for _, c := range cases {
		_, err := p.SignUp(c.email, c.password)
		assert.Equal(t, c.err, err, "%q / %q", c.email, c.password)
	}
}

func TestSignUpAccountTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	s.EXPECT().CreateAccount("ani@example.com", gomock.Any()).Return(nil, store.ErrAccountTaken).Times(1)

	_, err := p.SignUp("ani@example.com", "secret123")
	assert.Equal(t, ErrAccountTaken, err)
}

func TestSignIn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	account := &schema.Account{ID: uuid.New(), Email: "ani@example.com", PassHash: string(hash)}

	s.EXPECT().GetAccountByEmail("ani@example.com").Return(account, nil).Times(2)
	s.EXPECT().CreateSession(account.ID, gomock.Any()).Return(&schema.Session{ID: uuid.New(), AccountID: account.ID}, nil).Times(1)

	token, err := p.SignIn("ani@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, account.ID.String(), token.UID)

	_, err = p.SignIn("ani@example.com", "wrong-password")
	assert.Equal(t, ErrInvalidCredential, err)
}

func TestSignInUnknownAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	s.EXPECT().GetAccountByEmail("nobody@example.com").Return(nil, store.ErrAccountNotFound).Times(1)

	_, err := p.SignIn("nobody@example.com", "secret123")
	assert.Equal(t, ErrInvalidCredential, err)

	_, err = p.SignIn("nobody@example.com", "")
	assert.Equal(t, ErrMissingPassword, err)
}

func TestSignInStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	failure := errors.New("connection refused")
	s.EXPECT().GetAccountByEmail(gomock.Any()).Return(nil, failure).Times(1)

	_, err := p.SignIn("ani@example.com", "secret123")
	assert.Equal(t, failure, err)
}

func TestSignOut(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	sessionID := uuid.New()
	s.EXPECT().RevokeSession(sessionID).Return(nil).Times(1)
	assert.NoError(t, p.SignOut(sessionID.String()))

	missing := uuid.New()
	s.EXPECT().RevokeSession(missing).Return(store.ErrSessionNotFound).Times(1)
	assert.Equal(t, ErrInvalidToken, p.SignOut(missing.String()))

	assert.Equal(t, ErrInvalidToken, p.SignOut("not-a-session"))
}

func TestCurrentUserRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)

	accountID := uuid.New()
	revokedAt := time.Now()
	session := schema.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	s.EXPECT().CreateSession(accountID, gomock.Any()).Return(&session, nil).Times(1)
	token, err := p.issue(&schema.Account{ID: accountID})
	assert.NoError(t, err)

	_, err = p.CurrentUser("garbage")
	assert.Equal(t, ErrInvalidToken, err)

	revoked := session
	revoked.RevokedAt = &revokedAt
	s.EXPECT().GetSession(session.ID).Return(&revoked, nil).Times(1)
	_, err = p.CurrentUser(token.Token)
	assert.Equal(t, ErrSessionExpired, err)

	s.EXPECT().GetSession(session.ID).Return(nil, store.ErrSessionNotFound).Times(1)
	_, err = p.CurrentUser(token.Token)
	assert.Equal(t, ErrSessionExpired, err)

	other := session
	other.AccountID = uuid.New()
	s.EXPECT().GetSession(session.ID).Return(&other, nil).Times(1)
	_, err = p.CurrentUser(token.Token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestCurrentUserForeignKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)

	foreignKey, err := rsa.GenerateKey(rand.Reader, 1024)
	assert.NoError(t, err)
	foreign := NewJWTProvider(s, foreignKey, time.Hour)

	accountID := uuid.New()
	s.EXPECT().CreateSession(accountID, gomock.Any()).Return(&schema.Session{ID: uuid.New(), AccountID: accountID}, nil).Times(1)
	token, err := foreign.issue(&schema.Account{ID: accountID})
	assert.NoError(t, err)

	_, err = newTestProvider(t, s).CurrentUser(token.Token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestCurrentUserExpiredToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockInnerCore(ctl)
	p := newTestProvider(t, s)
	p.now = func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}

	accountID := uuid.New()
	s.EXPECT().CreateSession(accountID, gomock.Any()).Return(&schema.Session{ID: uuid.New(), AccountID: accountID}, nil).Times(1)
	token, err := p.issue(&schema.Account{ID: accountID})
	assert.NoError(t, err)

	_, err = p.CurrentUser(token.Token)
	assert.Equal(t, ErrSessionExpired, err)
}
