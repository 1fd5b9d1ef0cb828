// Package docs Jet Charter Service API.
//
// Бэкенд сайта чартерных перелётов: популярные маршруты для континента посетителя,
// предложения empty leg и jet sharing, справочник самолётов и направлений, приём заявок.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
