package handler

import (
	eventdomain "visitbook-go/internal/domain/event"
	familydomain "visitbook-go/internal/domain/family"
	geolocdomain "visitbook-go/internal/domain/geoloc"
	placedomain "visitbook-go/internal/domain/place"
	subdomain "visitbook-go/internal/domain/subscription"
	userdomain "visitbook-go/internal/domain/user"
	"visitbook-go/internal/transport/httpserver/middleware"
	"visitbook-go/pkg/logger"
)

type Handlers struct {
	Users         *userdomain.Service
	Families      *familydomain.Service
	Places        *placedomain.Service
	Subscriptions *subdomain.Service
	Events        *eventdomain.Service
	Geolocs       *geolocdomain.Service

	auth *middleware.JWTAuth
	log  logger.Logger
}

func New(
	users *userdomain.Service,
	families *familydomain.Service,
	places *placedomain.Service,
	subscriptions *subdomain.Service,
	events *eventdomain.Service,
	geolocs *geolocdomain.Service,
	auth *middleware.JWTAuth,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:         users,
		Families:      families,
		Places:        places,
		Subscriptions: subscriptions,
		Events:        events,
		Geolocs:       geolocs,
		auth:          auth,
		log:           log,
	}
}
