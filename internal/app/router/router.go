package router

import (
	"github.com/adergachev/smmstore/internal/app/handlers"
	middlware "github.com/adergachev/smmstore/internal/app/middleware"
	"github.com/go-chi/chi/v5"
)

func NewAppRouter(uh *handlers.UserHandler,
	bh *handlers.BalanceHandler,
	dh *handlers.DepositsHandler,
	oh *handlers.OrdersHandler,
	sh *handlers.ServicesHandler,
	wh *handlers.WebhooksHandler,
	gh *handlers.GatewayHandler,
	ah *handlers.AdminHandler,
	am middlware.AuthMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlware.RequestLogger)
	r.Use(middlware.ResponseLogger)

	r.Post("/api/user/register", uh.Register)
	r.Post("/api/user/login", uh.Login)
	r.Get("/api/services", sh.GetServices)
	r.Post("/api/webhooks/{gateway}", wh.HandleWebhook)
	r.Post("/api/gateways/{gateway}/status", gh.CheckStatus)
	r.Options("/api/gateways/{gateway}/status", gh.CheckStatus)

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)

		r.Get("/api/balance", bh.GetBalance)
		r.Get("/api/transactions", bh.GetTransactions)
		r.Post("/api/deposits", dh.CreateDeposit)
		r.Post("/api/deposits/confirm", dh.ConfirmDeposit)
		r.Post("/api/orders", oh.CreateOrder)
		r.Get("/api/orders", oh.GetOrders)
	})

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)
		r.Use(am.RequireAdmin)

		r.Get("/api/admin/transactions", ah.ListTransactions)
		r.Post("/api/admin/transactions/{uuid}/approve", ah.ApproveTransaction)
		r.Post("/api/admin/transactions/{uuid}/reject", ah.RejectTransaction)
		r.Get("/api/admin/orders", ah.ListOrders)
		r.Post("/api/admin/orders/{uuid}/refund", ah.RefundOrder)
		r.Post("/api/admin/orders/{uuid}/reorder", ah.ReorderOrder)
	})
	return r
}
