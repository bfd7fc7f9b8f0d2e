package auth

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         log,
	}
}

// Token exchanges form credentials for a bearer access token. The body follows
// the password-grant convention: username, password and an optional
// space-separated scope field.
func (ctrl *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	request := &requests.Token{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		Scopes:   strings.Fields(r.PostFormValue("scope")),
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := ctrl.AuthUsecase.IssueToken(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, token)
}

// PrivateData echoes the authenticated caller back, proving the bearer
// middleware resolved the token to a known user.
func (ctrl *AuthController) PrivateData(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(constvars.CONTEXT_CURRENT_USER_KEY).(*models.User)
	if !ok || user == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	response := responses.PrivateData{
		Message: constvars.PrivateDataMessage,
		User:    responses.UserInfo{Username: user.Username},
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
