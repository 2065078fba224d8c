package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}
	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	if user.Role != RoleMerchant {
		t.Fatalf("expected default role %q, got %q", RoleMerchant, user.Role)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("A", "dup@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "dup@example.com", "Password@456"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "login@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := service.Login("login@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if userID != user.ID || email != user.Email || role != user.Role {
		t.Fatalf("claims mismatch: %s %s %s", userID, email, role)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "wrong@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := service.Login("wrong@example.com", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
