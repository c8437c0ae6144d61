package http

import "life-admin/internal/auth"

type credentialsReq struct {
	UserEmail string `json:"useremail" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r credentialsReq) toInput() auth.Credentials {
	return auth.Credentials{Email: r.UserEmail, Password: r.Password}
}

type userResp struct {
	ID        int64  `json:"id"`
	UserEmail string `json:"useremail"`
}

func newUserResp(u auth.User) userResp {
	return userResp{ID: u.ID, UserEmail: u.Email}
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResp(t auth.Token) tokenResp {
	return tokenResp{AccessToken: t.AccessToken, TokenType: t.TokenType}
}
