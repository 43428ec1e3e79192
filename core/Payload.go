package core

import (
	"fmt"
	"strconv"
)

const PayloadTerminator = "~"

const MatchStartHeader = "MS"      // Match Start 開始比賽
const BattleSituationHeader = "BS" // Battle status 戰鬥中的狀態
const PointScoredHeader = "PS"     // Point Scored 得分
const BattleOverHeader = "BO"      // Battle over 比賽結束

func generateMatchStartPayload(matchId string, serve Side) string {
	return fmt.Sprintf("%s%s,%d%s", MatchStartHeader, matchId, serve, PayloadTerminator)
}

//frame,phase,ballX,ballY,ballVX,ballVY,leftY,leftScore,rightY,rightScore
func generateBattlePayload(s Snapshot) string {
	payload := fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s,%d,%s,%d", s.Frame, s.Phase,
		formatCoord(s.Ball.X), formatCoord(s.Ball.Y),
		formatCoord(s.Ball.VX), formatCoord(s.Ball.VY),
		formatCoord(s.LeftPaddle.Y), s.Score.Left,
		formatCoord(s.RightPaddle.Y), s.Score.Right)
	return BattleSituationHeader + payload + PayloadTerminator
}

func generatePointScoredPayload(side Side, score Score) string {
	return fmt.Sprintf("%s%d,%d,%d%s", PointScoredHeader, side, score.Left, score.Right, PayloadTerminator)
}

func generateBattleOver(matchId string, winner Side, score Score) string {
	return fmt.Sprintf("%s%s,%d,%d,%d%s", BattleOverHeader, matchId, winner, score.Left, score.Right, PayloadTerminator)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
