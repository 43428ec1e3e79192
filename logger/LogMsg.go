package logger

const MatchStartMsg = "比賽開始 match id: %s, 發球方向: %s"
const MatchPausedMsg = "比賽暫停 match id: %s"
const MatchResumedMsg = "比賽繼續 match id: %s"
const PauseIgnoredMsg = "目前階段 %s 不能暫停"

const PointScoredMsg = "%s 得分！比分 %d : %d"
const BattleOverMsg = "比賽結束 %s 獲勝！比分 %d : %d"

const FramePayloadMsg = "frame payload: %s"
const EventPayloadMsg = "event payload: %s"
