package models

// Ключи клиентского хранилища браузерной сессии.
const (
	StorageKeyToken  = "token"
	StorageKeyUserID = "user_id"
)

// AuthSession признак входа пользователя, прочитанный из клиентского хранилища.
type AuthSession struct {
	Token  string
	UserID string
}

// LoggedIn сообщает, есть ли в сессии токен.
func (s AuthSession) LoggedIn() bool {
	return s.Token != ""
}
