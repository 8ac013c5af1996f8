package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"oakstream.dev/tubefeed/cmd/player/internal/ui"
	"oakstream.dev/tubefeed/pkg/feedclient"
	"oakstream.dev/tubefeed/pkg/player"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the tubefeed server")
	playerCmd := flag.String("player", "mpv", "external player command handed the watch URL")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := feedclient.NewLoader(feedclient.NewClient(*serverURL))
	overlay := ui.NewOverlay(player.NewCommandPlayer(*playerCmd), os.Stdout)

	snap := loader.Load(ctx)
	ui.RenderList(os.Stdout, snap)

	fmt.Println(`commands: <number> play, "r" refresh, "q" quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		switch line := strings.TrimSpace(scanner.Text()); line {
		case "":
			continue
		case "q":
			return
		case "r":
			snap = loader.Refresh(ctx)
			ui.RenderList(os.Stdout, snap)
		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Println("unknown command")
				continue
			}
			v, ok := ui.Select(snap, n)
			if !ok {
				fmt.Println("no such entry")
				continue
			}
			overlay.Present(ctx, v)
			ui.RenderList(os.Stdout, snap)
		}
	}
}
