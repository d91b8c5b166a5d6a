// Package main выпускает токен для локального входа в панель управления.
// Токен подписывается ключом jwttoken.jwt_secret_key из конфига
// и передаётся в форму /login.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/magabrotheeeer/crime-gazette/internal/config"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/jwt"
)

func main() {
	userID := flag.String("user", "admin", "user id stored in the token")
	role := flag.String("role", "", "token role, defaults to jwttoken.admin_role")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.MustLoad()
	if cfg.JWTSecretKey == "" {
		fmt.Fprintln(os.Stderr, "jwttoken.jwt_secret_key is empty, admin check is disabled")
		os.Exit(1)
	}
	if *role == "" {
		*role = cfg.AdminRole
	}

	token, err := jwt.NewJWTMaker(cfg.JWTSecretKey, *ttl).GenerateToken(*userID, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
