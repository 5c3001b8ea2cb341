package auth

import (
	"context"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/secrets"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *firebaseauth.Client
	projectID    string
)

func init() {
	// Load .env locally
	_ = godotenv.Load()

	ctx := context.Background()

	credsJSON := secrets.Get(ctx, "FIREBASE_CREDENTIALS_JSON")
	projectID = os.Getenv("FIREBASE_PROJECT_ID")

	if credsJSON == "" || projectID == "" {
		log.Println("⚠️ Firebase credentials not configured, Google sign-in disabled")
		return
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
}

// verifyIDToken checks a Firebase ID token (including revocation) and the
// token audience against our project.
func verifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, bool) {
	if firebaseAuth == nil {
		return nil, false
	}
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		return nil, false
	}
	if token.Audience != projectID {
		log.Printf("❌ Token audience mismatch: got %q", token.Audience)
		return nil, false
	}
	return token, true
}

// issueJWT generates a session token for a user or admin.
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secrets.JWTSecret())
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signedToken
}
