package main

import (
	"flag"
	"time"

	"github.com/cardroom/holdemtable"
	"github.com/cardroom/holdemtable/actor"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"
)

const botActionDelay = 800 * time.Millisecond

func main() {
	verbose := flag.Bool("verbose", false, "log engine internals")
	flag.Parse()

	logLevel := logrus.WarnLevel
	if *verbose {
		logLevel = logrus.DebugLevel
	}

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hold'em ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Table", pterm.FgDarkGray.ToStyle()),
	).Srender()
	pterm.Print(title)

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your name").
		WithDefaultValue("You").Show()
	pterm.Println()

	setting := holdemtable.TableSetting{
		Name: "main",
		JoinPlayers: []holdemtable.JoinPlayer{
			{PlayerID: name, RedeemChips: holdemtable.DefaultStartingChips},
			{PlayerID: "Bot Lefty", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
			{PlayerID: "The House", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
			{PlayerID: "Bot Righty", RedeemChips: holdemtable.DefaultStartingChips, IsBot: true},
		},
	}

	engine := holdemtable.NewTableEngine(uint32(logLevel))

	engine.OnActionTaken(func(playerID string, action string, chips int64) {
		if chips > 0 {
			pterm.Info.Printfln("%s %ss %d", playerID, action, chips)
		} else {
			pterm.Info.Printfln("%s %ss", playerID, action)
		}
	})
	engine.OnStreetAdvanced(func(round string) {
		pterm.DefaultSection.Println(round)
	})
	engine.OnCommunityRevealed(func(cards []holdemtable.Card) {
		board := ""
		for _, c := range cards {
			board += c.String() + " "
		}
		pterm.Success.Printfln("Community cards: %s", board)
	})
	engine.OnCardDealt(func(playerID string, card holdemtable.Card, faceUp bool) {
		if playerID == name && faceUp {
			pterm.Success.Printfln("You are dealt %s", card)
		} else if faceUp {
			pterm.Info.Printfln("%s shows %s", playerID, card)
		}
	})

	bots := make([]*actor.BotRunner, 0)
	for _, p := range setting.JoinPlayers[1:] {
		bot := actor.NewBotRunner(engine, p.PlayerID)
		bot.SetActionDelay(botActionDelay)
		bots = append(bots, bot)
	}

	engine.OnTableUpdated(func(table *holdemtable.Table) {
		for _, bot := range bots {
			bot.UpdateTableState(table)
		}
	})

	table, err := engine.CreateTable(setting)
	if err != nil {
		pterm.Error.Printfln("failed to create table: %v", err)
		return
	}
	if err := engine.PlayerJoin(name); err != nil {
		pterm.Error.Printfln("failed to join: %v", err)
		return
	}

	spinner, _ := pterm.DefaultSpinner.Start("Waiting for everyone to sit down...")
	for table.State.Status == holdemtable.TableStateStatus_TableCreated {
		time.Sleep(100 * time.Millisecond)
	}
	spinner.Success()

	for {
		if err := engine.StartHand(); err != nil {
			if err == holdemtable.ErrTableGameOver {
				pterm.Error.Println("You are out of chips, better luck next time!")
			} else {
				pterm.Error.Printfln("failed to open hand: %v", err)
			}
			break
		}

		playHand(engine, table, name)

		renderTable(table, name)
		if result := table.State.GameState.Result; result != nil {
			renderResult(table, result)
		}

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another hand?").
			WithDefaultValue(true).Show()
		if !again {
			engine.CloseTable()
			break
		}
	}

	pterm.Println("Thanks for playing...")
}

// playHand blocks until the running hand settles, prompting whenever the
// action is on the human seat.
func playHand(engine holdemtable.TableEngine, table *holdemtable.Table, name string) {
	humanIdx := table.FindPlayerIdx(name)

	for {
		gs := table.State.GameState
		if gs == nil || gs.Result != nil {
			return
		}

		if gs.CurrentPlayer != humanIdx {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		renderTable(table, name)
		promptAction(engine, table, name)
	}
}

func promptAction(engine holdemtable.TableEngine, table *holdemtable.Table, name string) {
	gs := table.State.GameState
	p := gs.GetPlayer(table.FindPlayerIdx(name))

	options := []string{holdemtable.WagerAction_Fold}
	if p.Wager < gs.CurrentWager {
		options = append(options, holdemtable.WagerAction_Call)
	} else {
		options = append(options, holdemtable.WagerAction_Check)
	}
	options = append(options, holdemtable.WagerAction_Raise)

	for {
		action, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Select your next action").
			WithOptions(options).Show()

		if err := engine.SubmitAction(name, action); err != nil {
			pterm.Error.Printfln("invalid action: %v", err)
			continue
		}
		return
	}
}
