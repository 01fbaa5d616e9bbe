package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"

	"github.com/botarena/botarena/common/influxdb"
	"github.com/botarena/botarena/common/utils"
	"github.com/botarena/botarena/common/utils/vector"
	"github.com/botarena/botarena/config"
	"github.com/botarena/botarena/game/behavior"
	"github.com/botarena/botarena/game/bot"
	"github.com/botarena/botarena/game/deathmatch"
)

func main() {
	configFile := flag.String("config", "", "Path to the arena configuration file")
	ticks := flag.Int("ticks", 0, "Number of ticks to simulate; overrides arena.ticks")
	tps := flag.Int("tps", 0, "Ticks per second; overrides arena.tps")
	realtime := flag.Bool("realtime", false, "Pace the simulation at the configured tps")
	frames := flag.String("frames", "", "Write one JSON frame per tick to this file")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		utils.FailWith(err)
	}

	for _, warning := range cfg.Warnings() {
		utils.WarnWith(warning)
	}

	if *ticks > 0 {
		cfg.Arena.Ticks = *ticks
	}

	if *tps > 0 {
		cfg.Arena.Tps = *tps
	}

	utils.SetLevel(cfg.Log.Level)
	log := utils.Logger("arena-sim")

	runID := uuid.NewV4().String()

	game, err := deathmatch.NewDeathmatchGame(cfg, runID)
	utils.Check(err, "Could not create the arena")

	scheduler, err := behavior.NewScheduler(
		cfg.Behavior,
		vector.MakeVector2(cfg.Arena.Width, cfg.Arena.Height),
		cfg.Bot.Radius,
		game,
		cfg.Arena.Seed,
		utils.Logger("behavior"),
	)
	if err != nil {
		utils.FailWith(err)
	}

	game.SetBehavior(func(c *bot.Combatant, board *deathmatch.Blackboard, dt float64) {
		scheduler.Tick(c, board, dt)
	})

	metricsClient, err := influxdb.NewClient("arena-sim")
	utils.Check(err, "Could not create the metrics client")
	defer metricsClient.TearDown()

	shots := influxdb.NewCounter()
	kills := influxdb.NewCounter()

	killfeed := make(chan interface{}, 16)
	notify.Start(game.Relay().Topic(bot.EventDeath), killfeed)
	defer notify.Stop(game.Relay().Topic(bot.EventDeath), killfeed)

	fired := make(chan interface{}, 64)
	notify.Start(game.Relay().Topic(bot.EventWeaponFired), fired)
	defer notify.Stop(game.Relay().Topic(bot.EventWeaponFired), fired)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-fired:
				shots.Inc()
			case msg := <-killfeed:
				kills.Inc()

				if event, ok := msg.(deathmatch.ArenaEvent); ok {
					fmt.Println(chalk.Red, "☠", event.Name, "was killed", chalk.Reset, "(tick", event.Tick, ")")
				}
			}
		}
	}()

	metricsClient.Loop(func() {
		fields := map[string]interface{}{
			"shots": shots.GetAndReset(),
			"kills": kills.GetAndReset(),
		}

		for _, team := range bot.Teams {
			fields[team.String()] = game.TeamCounter().GetLiveCount(team)
		}

		metricsClient.WriteAppMetric("arena-sim", fields)
	})

	var frameWriter *bufio.Writer
	if *frames != "" {
		f, err := os.Create(*frames)
		utils.Check(err, "Could not create the frames file "+*frames)
		defer f.Close()

		frameWriter = bufio.NewWriter(f)
		defer frameWriter.Flush()
	}

	game.Start(ctx)
	spawned := game.SpawnTeams()

	log.Info().
		Str("run", runID).
		Int("combatants", len(spawned)).
		Int("ticks", cfg.Arena.Ticks).
		Int("tps", cfg.Arena.Tps).
		Msg("simulation started")

	dt := 1.0 / float64(cfg.Arena.Tps)

	var pace <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
		defer ticker.Stop()
		pace = ticker.C
	}

	tick := 0

simulation:
	for ; tick < cfg.Arena.Ticks; tick++ {
		if pace != nil {
			select {
			case <-ctx.Done():
				break simulation
			case <-pace:
			}
		} else if ctx.Err() != nil {
			break simulation
		}

		game.Step(dt)

		if frameWriter != nil {
			frameWriter.Write(game.GetFrameJson())
			frameWriter.WriteByte('\n')
		}

		if remainingTeams(game) <= 1 {
			tick++
			break
		}
	}

	cancel()

	log.Info().Int("ticks", tick).Msg("simulation finished")

	fmt.Println(chalk.Bold.TextStyle("Live combatants"))
	for _, team := range bot.Teams {
		fmt.Println(" ", chalk.Cyan, team, chalk.Reset, game.TeamCounter().GetLiveCount(team))
	}
}

func remainingTeams(game *deathmatch.DeathmatchGame) int {
	remaining := 0
	for _, team := range bot.Teams {
		if game.TeamCounter().GetLiveCount(team) > 0 {
			remaining++
		}
	}

	return remaining
}
