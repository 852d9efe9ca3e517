package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/opabeer/portfolio-api/adapters/persistence"
	authUC "github.com/opabeer/portfolio-api/internal/application/usecase/auth"
	chatUC "github.com/opabeer/portfolio-api/internal/application/usecase/chat"
	"github.com/opabeer/portfolio-api/internal/application/usecase/content"
	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

const e2ePassword = "admin123"

type AdminE2ETestSuite struct {
	suite.Suite
	Router *gin.Engine
	repo   *content.Repository
}

// SetupTest rebuilds the whole stack on a fresh in-memory store, so every
// test starts from the defaults and an empty session.
func (s *AdminE2ETestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	appLogger := logger.NewNop()
	st := persistence.NewMemoryStore()

	repo := content.NewRepository(context.Background(), st, appLogger)
	jwtSvc := auth.NewJWTService("e2e-test-secret", time.Hour)
	gate := authUC.NewGate(st, jwtSvc, e2ePassword, appLogger)

	editUseCase := content.NewEditUseCase(repo, appLogger)
	importUseCase := content.NewImportUseCase(repo, appLogger)
	chatUseCase := chatUC.NewChatUseCase(repo, nil, appLogger)

	s.repo = repo
	s.Router = NewRouter(
		NewPortfolioHandler(repo),
		NewChatHandler(chatUseCase),
		NewAuthHandler(gate),
		NewContentHandler(editUseCase, importUseCase),
		jwtSvc,
		gate,
		appLogger,
	)
}

func TestAdminE2E(t *testing.T) {
	suite.Run(t, new(AdminE2ETestSuite))
}

func (s *AdminE2ETestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = bytes.NewBuffer(nil)
	case []byte:
		buf = bytes.NewBuffer(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		buf = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AdminE2ETestSuite) login() string {
	rr := s.request(http.MethodPost, "/api/admin/auth/login", "", gin.H{"password": e2ePassword})
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp["access_token"])
	return resp["access_token"]
}

func (s *AdminE2ETestSuite) Test_Health() {
	rr := s.request(http.MethodGet, "/api/health", "", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
}

func (s *AdminE2ETestSuite) Test_PublicPortfolio() {
	rr := s.request(http.MethodGet, "/api/portfolio", "", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var doc portfolio.Document
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(s.T(), portfolio.Defaults().Personal.FirstName, doc.Personal.FirstName)
	assert.Len(s.T(), doc.Projects, 3)
}

func (s *AdminE2ETestSuite) Test_Chat_OfflineWithoutCredential() {
	rr := s.request(http.MethodPost, "/api/chat", "", gin.H{"message": "hi"})
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp ChatResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(s.T(), chatUC.OfflineMessage, resp.Response)
}

func (s *AdminE2ETestSuite) Test_Login_Flow() {
	rrBad := s.request(http.MethodPost, "/api/admin/auth/login", "", gin.H{"password": "wrongpassword"})
	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	token := s.login()

	rrAuth := s.request(http.MethodPost, "/api/admin/content/personal/stats", token, nil)
	assert.Equal(s.T(), http.StatusCreated, rrAuth.Code)

	rrNoAuth := s.request(http.MethodGet, "/api/admin/content", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rrNoAuth.Code)

	rrBadToken := s.request(http.MethodGet, "/api/admin/content", "garbage", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rrBadToken.Code)
}

func (s *AdminE2ETestSuite) Test_Logout_RetiresToken() {
	token := s.login()

	rr := s.request(http.MethodPost, "/api/admin/auth/logout", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	rrAfter := s.request(http.MethodGet, "/api/admin/content", token, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rrAfter.Code)
}

func (s *AdminE2ETestSuite) Test_ChangePassword_Flow() {
	token := s.login()

	rrShort := s.request(http.MethodPut, "/api/admin/auth/password", token,
		gin.H{"new_password": "abc", "confirm_password": "abc"})
	assert.Equal(s.T(), http.StatusBadRequest, rrShort.Code)

	rrMismatch := s.request(http.MethodPut, "/api/admin/auth/password", token,
		gin.H{"new_password": "abcd", "confirm_password": "abce"})
	assert.Equal(s.T(), http.StatusBadRequest, rrMismatch.Code)

	rrOK := s.request(http.MethodPut, "/api/admin/auth/password", token,
		gin.H{"new_password": "newpass", "confirm_password": "newpass"})
	s.Require().Equal(http.StatusOK, rrOK.Code)

	rrOld := s.request(http.MethodPost, "/api/admin/auth/login", "", gin.H{"password": e2ePassword})
	assert.Equal(s.T(), http.StatusUnauthorized, rrOld.Code)

	rrNew := s.request(http.MethodPost, "/api/admin/auth/login", "", gin.H{"password": "newpass"})
	assert.Equal(s.T(), http.StatusOK, rrNew.Code)
}

func (s *AdminE2ETestSuite) Test_ItemCRUD() {
	token := s.login()

	rrAdd := s.request(http.MethodPost, "/api/admin/content/sections/projects/items", token, nil)
	s.Require().Equal(http.StatusCreated, rrAdd.Code)
	s.Require().Len(s.repo.Get().Projects, 4)

	rrPatch := s.request(http.MethodPatch, "/api/admin/content/sections/projects/items/3", token,
		gin.H{"field": "title", "value": "Patched Title"})
	s.Require().Equal(http.StatusOK, rrPatch.Code)
	assert.Equal(s.T(), "Patched Title", s.repo.Get().Projects[3].Title)

	rrTags := s.request(http.MethodPatch, "/api/admin/content/sections/projects/items/3", token,
		gin.H{"field": "tags", "value": " HTML, CSS ,React"})
	s.Require().Equal(http.StatusOK, rrTags.Code)
	assert.Equal(s.T(), []string{"HTML", "CSS", "React"}, s.repo.Get().Projects[3].Tags)

	rrImmutable := s.request(http.MethodPatch, "/api/admin/content/sections/projects/items/0", token,
		gin.H{"field": "id", "value": "hijacked"})
	assert.Equal(s.T(), http.StatusBadRequest, rrImmutable.Code)

	rrDelNoConfirm := s.request(http.MethodDelete, "/api/admin/content/sections/projects/items/3", token, nil)
	assert.Equal(s.T(), http.StatusBadRequest, rrDelNoConfirm.Code)
	s.Require().Len(s.repo.Get().Projects, 4)

	rrDel := s.request(http.MethodDelete, "/api/admin/content/sections/projects/items/3?confirm=true", token, nil)
	s.Require().Equal(http.StatusOK, rrDel.Code)
	assert.Len(s.T(), s.repo.Get().Projects, 3)

	rrUnknown := s.request(http.MethodPost, "/api/admin/content/sections/widgets/items", token, nil)
	assert.Equal(s.T(), http.StatusNotFound, rrUnknown.Code)
}

func (s *AdminE2ETestSuite) Test_StackAndTheme() {
	token := s.login()

	rrStack := s.request(http.MethodPut, "/api/admin/content/stack", token,
		gin.H{"values": "Go, Postgres ,Redis"})
	s.Require().Equal(http.StatusOK, rrStack.Code)
	assert.Equal(s.T(), []string{"Go", "Postgres", "Redis"}, s.repo.Get().Stack)

	rrPreset := s.request(http.MethodPut, "/api/admin/content/theme", token,
		gin.H{"preset": "Royal Blue"})
	s.Require().Equal(http.StatusOK, rrPreset.Code)
	assert.Equal(s.T(), "Royal Blue", s.repo.Get().Theme.Name)

	rrCustom := s.request(http.MethodPut, "/api/admin/content/theme", token,
		gin.H{"hex": "#112233"})
	s.Require().Equal(http.StatusOK, rrCustom.Code)
	assert.Equal(s.T(), "Custom", s.repo.Get().Theme.Name)
	assert.Equal(s.T(), "17 34 51", s.repo.Get().Theme.Primary)

	rrBadHex := s.request(http.MethodPut, "/api/admin/content/theme", token,
		gin.H{"hex": "112233"})
	assert.Equal(s.T(), http.StatusBadRequest, rrBadHex.Code)
}

func (s *AdminE2ETestSuite) Test_GameSettings() {
	token := s.login()

	rrInfo := s.request(http.MethodPatch, "/api/admin/content/games/valorant", token,
		gin.H{"field": "experience", "value": "6+ Years"})
	s.Require().Equal(http.StatusOK, rrInfo.Code)
	assert.Equal(s.T(), "6+ Years", s.repo.Get().GameSettings.Valorant.Experience)

	before := len(s.repo.Get().GameSettings.FreeFire.Settings)
	rrAdd := s.request(http.MethodPost, "/api/admin/content/games/freeFire/settings", token, nil)
	s.Require().Equal(http.StatusCreated, rrAdd.Code)
	s.Require().Len(s.repo.Get().GameSettings.FreeFire.Settings, before+1)

	rrBadSlot := s.request(http.MethodPatch, "/api/admin/content/games/csgo", token,
		gin.H{"field": "game", "value": "CS"})
	assert.Equal(s.T(), http.StatusNotFound, rrBadSlot.Code)
}

func (s *AdminE2ETestSuite) Test_ExportImportReset() {
	token := s.login()

	rrPatch := s.request(http.MethodPatch, "/api/admin/content/personal", token,
		gin.H{"field": "firstName", "value": "Exported"})
	s.Require().Equal(http.StatusOK, rrPatch.Code)

	rrExport := s.request(http.MethodGet, "/api/admin/content", token, nil)
	s.Require().Equal(http.StatusOK, rrExport.Code)
	exported := rrExport.Body.Bytes()
	assert.Contains(s.T(), string(exported), `"firstName": "Exported"`)

	rrResetNoConfirm := s.request(http.MethodPost, "/api/admin/content/reset", token, gin.H{"confirm": false})
	assert.Equal(s.T(), http.StatusBadRequest, rrResetNoConfirm.Code)

	rrReset := s.request(http.MethodPost, "/api/admin/content/reset", token, gin.H{"confirm": true})
	s.Require().Equal(http.StatusOK, rrReset.Code)
	assert.Equal(s.T(), portfolio.Defaults().Personal.FirstName, s.repo.Get().Personal.FirstName)

	rrBadImport := s.request(http.MethodPut, "/api/admin/content", token, []byte("{not json"))
	assert.Equal(s.T(), http.StatusBadRequest, rrBadImport.Code)
	assert.Equal(s.T(), portfolio.Defaults().Personal.FirstName, s.repo.Get().Personal.FirstName)

	rrImport := s.request(http.MethodPut, "/api/admin/content", token, exported)
	s.Require().Equal(http.StatusOK, rrImport.Code)
	assert.Equal(s.T(), "Exported", s.repo.Get().Personal.FirstName)
}
