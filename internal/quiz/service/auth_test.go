package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Cau1809/quiz-programming/internal/quiz/store"
	"github.com/Cau1809/quiz-programming/internal/quiz/store/drivers/sqlite"
	"github.com/Cau1809/quiz-programming/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "quizd-test"

var testSecret = []byte("test-secret-test-secret-test-sec")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		filepath.Join(t.TempDir(), "quiz.db"))
	st, err := sqlite.NewStore(dsn, 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &AuthService{
		Store:    st,
		Signer:   signer,
		Issuer:   testIssuer,
		TokenTTL: time.Hour,
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(t, newTestStore(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "s3cret1"},
		{"missing password", "alice", ""},
		{"both missing", "", ""},
		{"whitespace username", "   ", "s3cret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	svc := newAuthService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "s3cret1"))

	// Second registration fails regardless of password
	err := svc.Register(ctx, "alice", "anything")
	require.ErrorIs(t, err, ErrUserTaken)

	// Exactly one account exists and its password is not stored in plaintext
	user, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "s3cret1", user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "s3cret1")
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	st := newTestStore(t)
	svc := newAuthService(t, st)
	ctx := context.Background()

	// Fire both registrations simultaneously: exactly one may win; the
	// loser gets the duplicate-username error, never a raw constraint
	// failure.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = svc.Register(ctx, "bob", "hunter22")
		}()
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrUserTaken)
			duplicates++
		}
	}
	require.Equal(t, 1, successes, "exactly one registration should win")
	require.Equal(t, 1, duplicates)

	_, err := st.Users().GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	st := newTestStore(t)
	svc := newAuthService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "s3cret1"))

	token, err := svc.Login(ctx, "alice", "s3cret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token's claims round-trip to the registered account
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	user, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLogin_Failures(t *testing.T) {
	st := newTestStore(t)
	svc := newAuthService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "s3cret1"))

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "mallory", "s3cret1")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "s3cret1")
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Login(ctx, "alice", "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLogin_NoTokenPersisted(t *testing.T) {
	st := newTestStore(t)
	svc := newAuthService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "s3cret1"))

	tok1, err := svc.Login(ctx, "alice", "s3cret1")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // iat has second granularity
	tok2, err := svc.Login(ctx, "alice", "s3cret1")
	require.NoError(t, err)

	// Sessions are self-contained; each login mints a fresh token
	require.NotEqual(t, tok1, tok2)
}
