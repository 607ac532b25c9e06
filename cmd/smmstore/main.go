package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/adergachev/smmstore/docs"
	"github.com/adergachev/smmstore/internal/app/config"
	"github.com/adergachev/smmstore/internal/app/handlers"
	"github.com/adergachev/smmstore/internal/app/logger"
	middlware "github.com/adergachev/smmstore/internal/app/middleware"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/adergachev/smmstore/internal/app/router"
	"github.com/adergachev/smmstore/internal/app/service"
	"github.com/adergachev/smmstore/internal/app/service/clients"
)

// @title           Swagger Docs for SMM Store API
// @version         1.0
// @description     This is an `smmstore` service. It lets users top up their wallets through payment gateways, place orders against the service catalog and track fulfillment, with an admin console for reconciliation.

// @contact.name   Alexey Dergachev
// @contact.email  adergachev@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)

	//setup repositories
	ts := service.NewTokenService(c)
	s := repository.NewDBStorage(c)
	ur := repository.NewUserRepository(s.DBConn)
	pr := repository.NewProfileRepository(s.DBConn)
	tr := repository.NewTransactionRepository(s.DBConn)
	or := repository.NewOrderRepository(s.DBConn)
	sr := repository.NewServiceRepository(s.DBConn)

	processOrderChannel := make(chan models.Order, 100)
	//setup services
	ps := service.NewProfileService(pr)
	us := service.NewUserService(ur, ps)
	gc := clients.NewGatewayClient(c)
	fc := clients.NewFulfillmentClient(c)
	ds := service.NewDepositService(tr, ps, gc, c.MinDepositAmount)
	ors := service.NewOrderService(or, sr, tr, ps, fc, processOrderChannel)
	rs := service.NewRefundService(or, tr, ps)
	cs := service.NewCatalogService(sr)
	as := service.NewAdminService(tr, or)
	oc := service.NewOrderCache(10*time.Second, 5*time.Minute, processOrderChannel)

	// setup handlers
	uh := handlers.NewUserHandler(us, ts, c.ContextTimeoutSec)
	bh := handlers.NewBalanceHandler(c.ContextTimeoutSec, ps, ds)
	dh := handlers.NewDepositsHandler(c.ContextTimeoutSec, ds)
	oh := handlers.NewOrdersHandler(c.ContextTimeoutSec, ors)
	sh := handlers.NewServicesHandler(c.ContextTimeoutSec, cs)
	wh := handlers.NewWebhooksHandler(c.ContextTimeoutSec, ds, c.PaystackSecretKey, c.KorapaySecretKey)
	gh := handlers.NewGatewayHandler(gc)
	ah := handlers.NewAdminHandler(c.ContextTimeoutSec, as, ds, rs, ors)

	am := middlware.NewAuthMiddleware(ts, us, ps, c.ContextTimeoutSec)

	r := router.NewAppRouter(uh, bh, dh, oh, sh, wh, gh, ah, am)

	// Start the goroutine
	poller := service.NewOrderStatusPoller(or, oc, fc, processOrderChannel,
		time.Duration(c.PollIntervalSec)*time.Second)
	go poller.Run(serverCtx)

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, cancelFunc := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancelFunc()
		close(processOrderChannel)
		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	// Run the server
	fmt.Printf("Starting server on port %s...\n", strings.Split(c.ServerAddr, ":")[1])
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()
}
