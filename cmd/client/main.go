// Command client connects a bot to a DAIDE server and runs it until the game
// ends, disconnects, or the process receives an interrupt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/freeeve/daide-client/internal/config"
	"github.com/freeeve/daide-client/internal/daidebot"
	"github.com/freeeve/daide-client/internal/daideclient"
	"github.com/freeeve/daide-client/internal/daidelog"
	"github.com/freeeve/daide-client/pkg/daide/frame"
)

func main() {
	cfg := config.Load(os.Args[1:])
	daidelog.Init(cfg.LogLevel)
	log := daidelog.Get()

	sessionID := daidelog.NewSessionID()
	ctx := daidelog.WithSessionID(context.Background(), sessionID)
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot := selectBot()

	addr := fmt.Sprintf("%s:%d", cfg.Server, cfg.Port)
	conn, err := frame.Connect(ctx, addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("failed to connect to DAIDE server")
	}
	defer conn.Close()

	sessionLog := daidelog.ForSession(ctx)
	session := daideclient.NewSession(conn, bot, sessionLog)
	if cfg.ReconnectPow != "" {
		passcode, perr := strconv.Atoi(cfg.ReconnectPwd)
		if perr != nil {
			log.Fatal().Err(perr).Str("passcode", cfg.ReconnectPwd).Msg("invalid reconnect passcode")
		}
		session.SetReconnect(strings.ToUpper(cfg.ReconnectPow), passcode)
	}
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		sessionLog.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
}

// selectBot picks the bot implementation from DAIDE_BOT (dumbbot by
// default), mirroring the donor's per-executable bot selection without
// adding a flag outside the spec's -s/-i/-p/-l/-r/-d set.
func selectBot() daidebot.Bot {
	switch os.Getenv("DAIDE_BOT") {
	case "holdbot":
		return daidebot.NewHoldBot()
	default:
		return daidebot.NewDumbBot()
	}
}
