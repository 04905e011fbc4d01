package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	accountRepo "lawlink/database/repository/account"
	profileRepo "lawlink/database/repository/profile"
	"lawlink/handlers"
	"lawlink/models"
	"lawlink/services/auth"
	"lawlink/services/registration"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memAccountRepo struct {
	byEmail map[string]*models.Account
}

func (m *memAccountRepo) Create(acct *models.Account) error {
	if _, exists := m.byEmail[acct.Email]; exists {
		return accountRepo.ErrDuplicateEmail
	}
	copied := *acct
	m.byEmail[acct.Email] = &copied
	return nil
}

func (m *memAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return m.byEmail[email], nil
}

func (m *memAccountRepo) GetByID(id string) (*models.Account, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccountRepo) Delete(id string) error {
	for email, a := range m.byEmail {
		if a.ID == id {
			delete(m.byEmail, email)
			return nil
		}
	}
	return fmt.Errorf("account with id %s not found", id)
}

type memProfileRepo[T any, PT models.ProfilePtr[T]] struct {
	byOwner map[string]*T
}

func (m *memProfileRepo[T, PT]) Create(ownerAccountID string, fields T) (*T, error) {
	doc := fields
	meta := PT(&doc).Meta()
	meta.OwnerAccountID = ownerAccountID
	now := time.Now()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	if err := PT(&doc).Validate(); err != nil {
		return nil, err
	}
	m.byOwner[ownerAccountID] = &doc
	return &doc, nil
}

func (m *memProfileRepo[T, PT]) FindByOwner(ownerAccountID string) (*T, error) {
	doc, ok := m.byOwner[ownerAccountID]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	return doc, nil
}

func (m *memProfileRepo[T, PT]) UpdateByOwner(ownerAccountID string, patch bson.M) (*T, error) {
	existing, ok := m.byOwner[ownerAccountID]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	raw, err := bson.Marshal(*existing)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range patch {
		switch k {
		case "_id", "ownerAccountId", "createdAt", "updatedAt":
			continue
		}
		doc[k] = v
	}
	mergedRaw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var merged T
	if err := bson.Unmarshal(mergedRaw, &merged); err != nil {
		return nil, &models.ValidationError{Field: "body", Reason: "wrong shape for one or more fields"}
	}
	if err := PT(&merged).Validate(); err != nil {
		return nil, err
	}
	m.byOwner[ownerAccountID] = &merged
	return &merged, nil
}

type stubVerifier struct {
	email string
	err   error
}

func (s *stubVerifier) VerifyExternalToken(ctx context.Context, token string) (string, error) {
	return s.email, s.err
}

func testRoleHandlers[T any, PT models.ProfilePtr[T]](t *testing.T, accounts accountRepo.AccountRepository, creds *auth.CredentialService, role models.Role) *handlers.RoleHandlers[T, PT] {
	t.Helper()
	profiles := &memProfileRepo[T, PT]{byOwner: make(map[string]*T)}
	return handlers.NewRoleHandlers(&registration.Orchestrator[T, PT]{
		Accounts: accounts,
		Profiles: profiles,
		Creds:    creds,
		Role:     role,
	})
}

func newTestRouter(t *testing.T, verifier auth.TokenVerifier) (*gin.Engine, *memAccountRepo) {
	t.Helper()
	accounts := &memAccountRepo{byEmail: make(map[string]*models.Account)}
	creds, err := auth.NewCredentialService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCredentialService: %v", err)
	}

	hb := &HandlerBundle{
		Auth: handlers.NewAuthHandler(&auth.DefaultAuthService{
			Accounts:   accounts,
			Creds:      creds,
			Federation: verifier,
		}),
		Lawyers:    testRoleHandlers[models.LawyerProfile](t, accounts, creds, models.RoleLawyer),
		LawFirms:   testRoleHandlers[models.LawFirmProfile](t, accounts, creds, models.RoleLawFirm),
		Paralegals: testRoleHandlers[models.ParalegalProfile](t, accounts, creds, models.RoleParalegal),
		Mediators:  testRoleHandlers[models.MediatorProfile](t, accounts, creds, models.RoleMediator),
		Clients:    testRoleHandlers[models.ClientProfile](t, accounts, creds, models.RoleClient),
		Corporates: testRoleHandlers[models.CorporateProfile](t, accounts, creds, models.RoleCorporate),
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return r, accounts
}

type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestClientSignupFetchUpdateFlow(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{})

	code, env := doJSON(t, r, http.MethodPost, "/api/users/signup/client", map[string]any{
		"name": "A", "email": "a@x.com", "password": "p1", "age": 30,
	})
	if code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201 (%s)", code, env.Message)
	}
	if !env.Success {
		t.Fatal("signup should report success")
	}
	ownerID, _ := env.Data["ownerAccountId"].(string)
	if ownerID == "" {
		t.Fatal("signup response must carry ownerAccountId")
	}
	if age, _ := env.Data["age"].(float64); age != 30 {
		t.Errorf("age = %v, want 30", env.Data["age"])
	}

	code, env = doJSON(t, r, http.MethodGet, "/api/users/clients/getprofile/"+ownerID, nil)
	if code != http.StatusOK {
		t.Fatalf("getprofile status = %d, want 200", code)
	}
	if age, _ := env.Data["age"].(float64); age != 30 {
		t.Errorf("fetched age = %v, want 30", env.Data["age"])
	}

	code, env = doJSON(t, r, http.MethodPut, "/api/users/clients/updateprofile/"+ownerID, map[string]any{"age": 31})
	if code != http.StatusOK {
		t.Fatalf("updateprofile status = %d, want 200 (%s)", code, env.Message)
	}
	if age, _ := env.Data["age"].(float64); age != 31 {
		t.Errorf("updated age = %v, want 31", env.Data["age"])
	}
	if name, _ := env.Data["name"].(string); name != "A" {
		t.Errorf("name = %q, want unchanged \"A\"", name)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	r, accounts := newTestRouter(t, &stubVerifier{})

	code, _ := doJSON(t, r, http.MethodPost, "/api/users/signup/lawyer", map[string]any{
		"name": "Jane", "email": "jane@x.com", "password": "p1",
	})
	if code != http.StatusCreated {
		t.Fatalf("first signup status = %d, want 201", code)
	}

	code, env := doJSON(t, r, http.MethodPost, "/api/users/signup/lawyer", map[string]any{
		"name": "Janet", "email": "jane@x.com", "password": "p2",
	})
	if code != http.StatusConflict {
		t.Fatalf("second signup status = %d, want 409", code)
	}
	if env.Success {
		t.Error("duplicate signup should report failure")
	}
	if len(accounts.byEmail) != 1 {
		t.Errorf("account count = %d, want 1", len(accounts.byEmail))
	}
}

func TestSignupValidationFailure(t *testing.T) {
	r, accounts := newTestRouter(t, &stubVerifier{})

	code, env := doJSON(t, r, http.MethodPost, "/api/users/signup/corporate", map[string]any{
		"email": "corp@x.com", "password": "p1", "industry": "retail",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("signup status = %d, want 400 (%s)", code, env.Message)
	}
	if len(accounts.byEmail) != 0 {
		t.Error("validation failure must not create an account")
	}
}

func TestLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{})

	if code, _ := doJSON(t, r, http.MethodPost, "/api/users/signup/mediator", map[string]any{
		"name": "Mia", "email": "mia@x.com", "password": "p1",
	}); code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201", code)
	}

	code, env := doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"email": "mia@x.com", "password": "p1",
	})
	if code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (%s)", code, env.Message)
	}
	if env.Data["token"] == "" || env.Data["token"] == nil {
		t.Error("login must return a token")
	}
	if role, _ := env.Data["role"].(string); role != "Mediator" {
		t.Errorf("role = %q, want Mediator", role)
	}

	// Wrong password and unknown email must be indistinguishable.
	codeWrong, envWrong := doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"email": "mia@x.com", "password": "nope",
	})
	codeUnknown, envUnknown := doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"email": "ghost@x.com", "password": "p1",
	})
	if codeWrong != http.StatusBadRequest || codeUnknown != http.StatusBadRequest {
		t.Fatalf("failure statuses = %d/%d, want 400/400", codeWrong, codeUnknown)
	}
	if envWrong.Message != envUnknown.Message {
		t.Error("login failures must not reveal which check failed")
	}

	code, env = doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{"email": "mia@x.com"})
	if code != http.StatusBadRequest {
		t.Fatalf("missing-field login status = %d, want 400", code)
	}
}

func TestGoogleAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{email: "mia@x.com"})

	// No account yet: verified token still fails with User Not Found.
	code, env := doJSON(t, r, http.MethodPost, "/api/users/google-auth", map[string]any{"token": "ext-token"})
	if code != http.StatusBadRequest {
		t.Fatalf("google-auth status = %d, want 400", code)
	}
	if env.Message != "User Not Found" {
		t.Errorf("message = %q, want User Not Found", env.Message)
	}

	if code, _ := doJSON(t, r, http.MethodPost, "/api/users/signup/mediator", map[string]any{
		"name": "Mia", "email": "mia@x.com", "password": "p1",
	}); code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201", code)
	}

	code, env = doJSON(t, r, http.MethodPost, "/api/users/google-auth", map[string]any{"token": "ext-token"})
	if code != http.StatusOK {
		t.Fatalf("google-auth status = %d, want 200 (%s)", code, env.Message)
	}
	if token, _ := env.Data["token"].(string); token != "ext-token" {
		t.Errorf("token = %q, want the external token echoed back", token)
	}
}

func TestGoogleAuthRejectsBadToken(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{err: fmt.Errorf("%w: bad audience", auth.ErrFederationInvalid)})

	code, env := doJSON(t, r, http.MethodPost, "/api/users/google-auth", map[string]any{"token": "garbage"})
	if code != http.StatusBadRequest {
		t.Fatalf("google-auth status = %d, want 400", code)
	}
	if env.Success {
		t.Error("rejected token should report failure")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{})

	code, env := doJSON(t, r, http.MethodGet, "/api/users/lawfirms/getprofile/unknown-id", nil)
	if code != http.StatusNotFound {
		t.Fatalf("getprofile status = %d, want 404", code)
	}
	if env.Success {
		t.Error("missing profile should report failure")
	}
}

func TestUpdateProfileNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{})

	code, _ := doJSON(t, r, http.MethodPut, "/api/users/paralegals/updateprofile/unknown-id", map[string]any{"phone": "1"})
	if code != http.StatusNotFound {
		t.Fatalf("updateprofile status = %d, want 404", code)
	}
}

func TestHealthRoute(t *testing.T) {
	r, _ := newTestRouter(t, &stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
}
