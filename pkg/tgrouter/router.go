package tgrouter

import (
	"context"
	"slices"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"gastrobot/pkg/logger"
	"gastrobot/pkg/tgrouter/interfaces"
)

var Module = fx.Provide(NewRouterFactory)

type RouterFactory func(*tgbotapi.BotAPI, ...OptFn) *Router

type Router struct {
	bot      *tgbotapi.BotAPI
	sender   Sender
	poolSize int
	logger   logger.Logger
	wg       sync.WaitGroup
	pool     sync.Pool
	stateDB  interfaces.State

	*RouterGroup
}

type Handler func(*Ctx)

func NewRouterFactory(logger logger.Logger) RouterFactory {
	return func(bot *tgbotapi.BotAPI, options ...OptFn) *Router {
		r := &Router{logger: logger, poolSize: _poolSize, bot: bot}
		if bot != nil {
			r.sender = bot
		}
		for _, opt := range options {
			opt(r)
		}
		r.pool.New = func() any {
			return &Ctx{bot: r.sender, stateDB: r.stateDB, logger: r.logger}
		}
		r.RouterGroup = &RouterGroup{
			root: true,
		}
		return r
	}
}

// poolSize - default router poolSize.
const _poolSize = 100

type OptFn func(r *Router)

func WithPoolSize(psize int) OptFn {
	return func(r *Router) {
		if psize > 0 {
			r.poolSize = psize
		}
	}
}

func WithState(s interfaces.State) OptFn {
	return func(r *Router) {
		r.stateDB = s
	}
}

// WithSender replaces the bot as the outgoing message sink.
func WithSender(s Sender) OptFn {
	return func(r *Router) {
		r.sender = s
	}
}

// ListenUpdate long-polls Telegram and blocks until ctx is cancelled.
func (r *Router) ListenUpdate(ctx context.Context) {
	updates := r.bot.GetUpdatesChan(tgbotapi.UpdateConfig{
		Offset:         0,
		Timeout:        60,
		Limit:          100,
		AllowedUpdates: []string{"message", "callback_query"},
	})

	r.Serve(ctx, updates)
}

// Serve fans updates out to poolSize workers. Updates for the same chat may be
// handled concurrently; handlers must tolerate that.
func (r *Router) Serve(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 1; i <= r.poolSize; i++ {
		r.wg.Add(1)
		go func(workerID int) {
			defer r.wg.Done()
			for {
				select {
				case update, ok := <-updates:
					if !ok {
						r.logger.Warn(ctx, "Update channel closed, worker shutting down",
							zap.Int("workerID", workerID))
						return
					}
					r.HandleUpdate(workerCtx, &update)
				case <-workerCtx.Done():
					return
				}
			}
		}(i)
	}

	<-ctx.Done()
}

const shutdownPollIntervalMax = 500 * time.Millisecond

// Shutdown stops polling, cancels the workers and waits for in-flight updates
// until ctx expires.
func (r *Router) Shutdown(ctx context.Context, cancel context.CancelFunc) error {
	pollIntervalBase := time.Millisecond
	nextPollInterval := func() time.Duration {
		// Add 10% jitter.
		interval := pollIntervalBase + time.Duration(rand.Intn(int(pollIntervalBase/10)+1))
		// Double and clamp for next time.
		pollIntervalBase *= 2
		if pollIntervalBase > shutdownPollIntervalMax {
			pollIntervalBase = shutdownPollIntervalMax
		}
		return interval
	}

	r.logger.Info(ctx, "Workers, shutting down...")
	if r.bot != nil {
		r.bot.StopReceivingUpdates()
	}
	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(nextPollInterval())
	defer timer.Stop()

	for {
		select {
		case <-done:
			r.logger.Info(ctx, "Workers, stopped!")
			return nil
		case <-ctx.Done():
			r.logger.Warn(ctx, "Shutdown timeout exceeded")
			return ctx.Err()
		case <-timer.C:
			timer.Reset(nextPollInterval())
		}
	}
}

func (r *Router) Use(middlewares ...Middleware) {
	r.RouterGroup.Use(middlewares...)
}

// HandleUpdate routes a single update synchronously.
func (r *Router) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	c := r.pool.Get().(*Ctx)
	c.update = update
	c.reset(ctx)

	r.handle(c)

	r.pool.Put(c)
}

// handle runs the first route whose filter matches; unmatched updates are dropped.
func (r *Router) handle(c *Ctx) {
	for h := range slices.Values(r.routes) {
		if h.filter(c) {
			r.logger.Debug(c.Context, "route matched", zap.Stringer("route", h.rtype))
			c.handlers = h.handlers
			c.next()
			return
		}
	}
}
