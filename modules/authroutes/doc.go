// Package authroutes mounts the HTTP surface of the federated authentication
// flow: one begin/callback route pair per configured surface, session cookie
// issuance and the success/failure redirects around the reconciliation core.
//
//	router := authroutes.New(registry, client, hostedUI, sessions, authroutes.Options{
//		Provider: "cognito",
//		Store: &authroutes.SurfaceConfig{
//			SuccessRedirect: "https://myshop.example/",
//			FailureRedirect: "https://myshop.example/login",
//		},
//	})
//	r.Mount("/", router)
//
// The callback accepts either the hosted-UI authorization code (state
// protected) or direct access_token / refresh_token query parameters, the two
// entry shapes the identity platform issues tokens through.
package authroutes
