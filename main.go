package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taikin/settings"
	"taikin/taikin"
	"taikin/view"

	"github.com/alexflint/go-filemutex"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tidwall/buntdb"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Name:  "taikin",
		Usage: "退勤時刻を計算する",
		Commands: []*cli.Command{
			calcCommand,
			formCommand,
			configCommand,
		},
	}
	return app.Run(os.Args)
}

var calcCommand = &cli.Command{
	Name:  "calc",
	Usage: "出勤時刻と休憩から退勤時刻を計算",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "login", Aliases: []string{"l"}, Usage: "出勤時刻 (HH:MM)"},
		&cli.StringSliceFlag{Name: "break", Aliases: []string{"b"}, Usage: "休憩 (HH:MM-HH:MM)"},
		&cli.DurationFlag{Name: "duration", Aliases: []string{"d"}, Usage: "労働時間 (未指定なら設定値)"},
		&cli.BoolFlag{Name: "json", Usage: "JSON で出力"},
	},
	Action: func(c *cli.Context) error {
		logger := newLogger()

		d := c.Duration("duration")
		if !c.IsSet("duration") {
			st, closeFn, err := openStore(logger)
			if err != nil {
				return err
			}
			defer closeFn()
			s, err := st.Load()
			if err != nil {
				return err
			}
			d = s.WorkDuration
		}

		return calc(c.App.Writer, logger, taikin.NewCalculator(d), c.String("login"), c.StringSlice("break"), c.Bool("json"))
	},
}

var formCommand = &cli.Command{
	Name:  "form",
	Usage: "入力フォームを表示",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "notify", Usage: "計算結果をデスクトップ通知する"},
	},
	Action: func(c *cli.Context) error {
		logger := newLogger()
		st, closeFn, err := openStore(logger)
		if err != nil {
			return err
		}
		s, err := st.Load()
		closeFn()
		if err != nil {
			return err
		}

		notify := s.Notify
		if c.IsSet("notify") {
			notify = c.Bool("notify")
		}
		tui := view.NewFormTUI(taikin.NewCalculator(s.WorkDuration), view.NewNotificator(notify), logger)
		return tui.Run()
	},
}

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "設定を表示・変更",
	Action: func(c *cli.Context) error {
		st, closeFn, err := openStore(newLogger())
		if err != nil {
			return err
		}
		defer closeFn()
		s, err := st.Load()
		if err != nil {
			return err
		}
		renderSettings(c.App.Writer, s)
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:      "duration",
			Usage:     "労働時間を設定 ex: 8h30m",
			ArgsUsage: "<duration>",
			Action: func(c *cli.Context) error {
				d, err := time.ParseDuration(c.Args().First())
				if err != nil {
					return cli.Exit(fmt.Sprintf("労働時間の指定が不正です ex: 8h30m: %s", err), 1)
				}
				st, closeFn, err := openStore(newLogger())
				if err != nil {
					return err
				}
				defer closeFn()
				if err := st.SetWorkDuration(d); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				return nil
			},
		},
		{
			Name:      "notify",
			Usage:     "デスクトップ通知の on/off",
			ArgsUsage: "<on|off>",
			Action: func(c *cli.Context) error {
				var on bool
				switch c.Args().First() {
				case "on":
					on = true
				case "off":
				default:
					return cli.Exit("on か off を指定してください", 1)
				}
				st, closeFn, err := openStore(newLogger())
				if err != nil {
					return err
				}
				defer closeFn()
				return st.SetNotify(on)
			},
		},
	},
}

func calc(w io.Writer, logger *slog.Logger, calculator *taikin.Calculator, login string, breakArgs []string, asJSON bool) error {
	breaks := make([]taikin.Break, 0, len(breakArgs))
	for _, a := range breakArgs {
		breaks = append(breaks, parseBreakArg(a))
	}

	r := calculator.Run(login, breaks)
	logger.Debug("calc", slog.String("login", login), slog.Int("breaks", len(breaks)), slog.Bool("ok", r.OK), slog.String("reason", string(r.Reason)))

	if asJSON {
		if err := view.RenderJSON(w, r); err != nil {
			return err
		}
		if !r.OK {
			return cli.Exit("", 1)
		}
		return nil
	}
	if err := view.RenderResult(w, r); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// parseBreakArg splits "HH:MM-HH:MM". A missing side is left empty.
func parseBreakArg(s string) taikin.Break {
	start, end, _ := strings.Cut(s, "-")
	return taikin.Break{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
}

func renderSettings(w io.Writer, s settings.Settings) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"設定", "値"})
	notify := "off"
	if s.Notify {
		notify = "on"
	}
	t.AppendRow(table.Row{"労働時間", s.WorkDuration.String()})
	t.AppendRow(table.Row{"通知", notify})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func openStore(logger *slog.Logger) (*settings.Store, func(), error) {
	db, err := initDB()
	if err != nil {
		return nil, nil, err
	}
	fm, err := newFileMutex()
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	closeFn := func() {
		fm.Close()
		db.Close()
	}
	return settings.NewStore(settings.NewRepository(db), fm, logger), closeFn, nil
}

func initDB() (*buntdb.DB, error) {
	dir, err := getTaikinDir()
	if err != nil {
		return nil, err
	}

	db, err := buntdb.Open(filepath.Join(dir, "taikin.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newLogger() *slog.Logger {
	dir, err := getTaikinDir()
	if err != nil {
		panic(err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}

func newFileMutex() (*filemutex.FileMutex, error) {
	dir, err := getTaikinDir()
	if err != nil {
		return nil, err
	}
	return filemutex.New(filepath.Join(dir, "taikin.lock"))
}

func getTaikinDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".taikin")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}
