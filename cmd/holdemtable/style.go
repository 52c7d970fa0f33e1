package main

import (
	"fmt"

	"github.com/cardroom/holdemtable"
	"github.com/pterm/pterm"
)

// renderTable draws the whole table: the three other seats on top, the board
// in the middle and the human seat at the bottom.
func renderTable(table *holdemtable.Table, humanID string) {
	gs := table.State.GameState
	if gs == nil {
		return
	}

	showdown := gs.Result != nil && !gs.Result.WonByFolds

	var others []pterm.Panel
	var human pterm.Panel
	for _, p := range gs.Players {
		reveal := p.PlayerID == humanID || (showdown && !p.Fold)
		panel := pterm.Panel{Data: playerBox(table, p, reveal)}
		if p.PlayerID == humanID {
			human = panel
		} else {
			others = append(others, panel)
		}
	}

	board := pterm.Panel{Data: boardBox(gs)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		others,
		{board},
		{human},
	}).Render()
}

func playerBox(table *holdemtable.Table, p *holdemtable.GamePlayerState, reveal bool) string {
	pbox := pterm.DefaultBox.WithLeftPadding(3).WithRightPadding(3).WithTopPadding(1).WithBottomPadding(1)

	status := pterm.LightGreen("Active")
	if p.Fold {
		status = pterm.LightRed("Folded")
	} else if p.AllIn {
		status = pterm.LightYellow("All-In")
	}

	pocket := "🂠 🂠"
	if reveal && len(p.Pocket) == 2 {
		pocket = fmt.Sprintf("%s %s", p.Pocket[0], p.Pocket[1])
	}

	title := p.PlayerID
	if table.State.CurrentDealerSeat == p.Idx {
		title += " (D)"
	}
	if table.State.GameState.CurrentPlayer == p.Idx {
		title = pterm.LightCyan(title)
	}

	return pbox.WithTitle(title).WithTitleTopLeft().
		Sprintf("%s\nBankroll: %d\nWager: %d\n%s", status, p.Bankroll, p.Wager, pterm.BgGreen.Sprint(pocket))
}

func boardBox(gs *holdemtable.GameState) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	board := ""
	for _, c := range gs.Board {
		board += c.String() + " "
	}
	if board == "" {
		board = "no cards yet"
	}

	return pbox.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().
		Sprintf("%s\nPot: %d  Round: %s", pterm.BgGreen.Sprint(board), gs.Pot, gs.Round)
}

// renderResult prints the settlement panel once a hand is over.
func renderResult(table *holdemtable.Table, result *holdemtable.GameResult) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	info := ""
	for _, idx := range result.Winners {
		pr := result.Players[idx]
		if result.WonByFolds {
			info += pterm.Sprintfln("%s takes down the pot of %d", pterm.LightCyan(pr.PlayerID), result.Pot)
		} else {
			info += pterm.Sprintfln("%s wins %d with a score of %d", pterm.LightCyan(pr.PlayerID), pr.Awarded, pr.Score)
		}
	}

	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info))
}
