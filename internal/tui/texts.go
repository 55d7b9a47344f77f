// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

type uiText struct {
	title         string
	empty         string
	offline       string
	refreshing    string
	refreshFailed string
	inFlight      string
	copied        string
	copyFailed    string
	help          string
	quitHint      string

	buildInfoTitle string
	appName        string
	version        string
	date           string
	commit         string
	back           string
}

var englishText = uiText{
	title:         "SHARING REQUESTS",
	empty:         "No pending sharing requests.",
	offline:       "offline, showing cached requests",
	refreshing:    "Refreshing...",
	refreshFailed: "Could not refresh sharing requests.",
	inFlight:      "This request is already being answered.",
	copied:        "Request id copied.",
	copyFailed:    "Could not copy to clipboard.",
	help:          "a: accept  d: decline  r: refresh  c: copy id  v: about  q: quit",
	quitHint:      "ctrl+c: quit",

	buildInfoTitle: "ABOUT",
	appName:        "Application: share-inbox",
	version:        "Version: ",
	date:           "Date: ",
	commit:         "Commit: ",
	back:           "esc: back",
}

var russianText = uiText{
	title:         "ЗАПРОСЫ НА СОВМЕСТНЫЙ ДОСТУП",
	empty:         "Нет ожидающих запросов.",
	offline:       "нет связи, показаны сохранённые запросы",
	refreshing:    "Обновление...",
	refreshFailed: "Не удалось обновить список запросов.",
	inFlight:      "Ответ на этот запрос уже отправляется.",
	copied:        "Идентификатор запроса скопирован.",
	copyFailed:    "Не удалось скопировать в буфер обмена.",
	help:          "a: принять  d: отклонить  r: обновить  c: копировать id  v: о программе  q: выход",
	quitHint:      "ctrl+c: выход",

	buildInfoTitle: "ИНФОРМАЦИЯ О ПРОГРАММЕ",
	appName:        "Название приложения: share-inbox",
	version:        "Версия: ",
	date:           "Дата: ",
	commit:         "Коммит: ",
	back:           "esc: назад",
}

func textFor(language string) uiText {
	if strings.EqualFold(strings.TrimSpace(language), "ru") {
		return russianText
	}
	return englishText
}
