// Package web serves the server-rendered public site, the sign-in form and the
// guarded dashboard landing page. Templates are embedded and every UI string
// goes through the i18n catalog.
package web
