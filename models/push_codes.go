package models

import "fmt"

type PushCode string

type PushTpl struct {
	Title string
	Msg   string
}

const (
	PushCandidateMoved PushCode = "PushCandidateMoved"
	PushCandidateNote  PushCode = "PushCandidateNote"
	PushCandidateAdded PushCode = "PushCandidateAdded"
)

var PushCodeMap = map[PushCode]PushTpl{
	PushCandidateMoved: {Title: "Кандидат переведен", Msg: "Кандидат %v переведен на этап «%v»"},
	PushCandidateNote:  {Title: "Новая заметка", Msg: "Добавлена заметка по кандидату %v"},
	PushCandidateAdded: {Title: "Новый кандидат", Msg: "Кандидат %v добавлен на этап «%v»"},
}

type NotificationData struct {
	Code  PushCode
	Msg   string
	Title string
}

func GetPushCandidateMoved(candidateName, stageName string) NotificationData {
	code := PushCandidateMoved
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, candidateName, stageName),
	}
}

func GetPushCandidateNote(candidateName string) NotificationData {
	code := PushCandidateNote
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, candidateName),
	}
}

func GetPushCandidateAdded(candidateName, stageName string) NotificationData {
	code := PushCandidateAdded
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, candidateName, stageName),
	}
}
