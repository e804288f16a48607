// Package mocks provides mock implementations for testing the auth layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sess, nil)
package mocks

// Generate mock for CredentialAuthenticator from internal/ports.
// This creates MockCredentialAuthenticator with Login, Signup and Logout.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=credential_authenticator_mock.go github.com/adhyanguru/admin-go/internal/ports CredentialAuthenticator

// Generate mock for SessionStore from internal/ports.
// This creates MockSessionStore with Save, Get and Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/adhyanguru/admin-go/internal/ports SessionStore

// Generate mock for RoleMapper from internal/ports.
// This creates MockRoleMapper with Map.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=role_mapper_mock.go github.com/adhyanguru/admin-go/internal/ports RoleMapper
