package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	Store   store.SessionStore
	Log     *logrus.Logger
	Catalog map[string]models.Room // default room/task catalog
	BaseURL string
}
