package tgbot

// User-visible texts. The bot speaks Russian; repeat option labels live in
// the dialog package because they are also the stored values.
const (
	txtGroupHello = "👋 Привет, я включился и готов напоминать вам о ваших забытых событиях!"

	txtAskText = "📝 Введите текст напоминания:"
	txtAskDate = "📅 Теперь введите дату в формате ДД.ММ (например: 25.12):"
	txtAskTime = "⏰ Теперь введите время в формате ЧЧ:ММ (например: 14:30):"

	txtBadDate      = "❌ Неправильный формат. Используйте ДД.ММ (например: 25.12)"
	txtBadTime      = "❌ Неправильный формат. Используйте ЧЧ:ММ (например: 14:30)"
	txtBadDateQuick = "❌ Неправильный формат даты. Используйте ДД.ММ"
	txtBadTimeQuick = "❌ Неправильный формат времени. Используйте ЧЧ:ММ"
	txtPastDue      = "❌ Время для этой даты уже прошло. Укажите будущую дату."

	txtChooseRepeat = "📌 Выберите тип повторения:"

	txtStoreUnavailable = "❌ Не удалось подключиться к хранилищу напоминаний"
	txtSaveFailed       = "❌ Не удалось сохранить напоминание в таблицу"

	txtNoReminders = "📭 Напоминаний пока нет"
	txtListHeader  = "📋 Все напоминания:\n\n"

	txtDelUsage       = "❌ Укажите номер строки для очистки\nПример: /del 2"
	txtDelBadNumber   = "❌ Неверный формат. Используйте: /del номер_строки"
	txtDelNotPositive = "❌ Номер строки должен быть положительным"
	txtDelFailed      = "❌ Произошла ошибка при очистке"

	txtCanceled = "❌ Диалог отменен"

	txtTestSent   = "✅ Тестовое сообщение отправлено в группу"
	txtTestFailed = "❌ Ошибка отправки"

	txtUnknownCommand = "🤔 Я не знаю такую команду. Используйте /help"
	txtInternalError  = "❌ Произошла ошибка при обработке команды"

	txtQuickAddUsage = "📝 Для добавления напоминания напишите в формате:\n" +
		"бот напоминание Текст Дата(ДД.ММ) Время(ЧЧ:ММ) [Повторение]\n\n" +
		"Пример: бот напоминание Совещание 25.12 14:30"
	txtQuickAddMalformed = "❌ Неправильный формат. Используйте:\n" +
		"бот напоминание Текст Дата(ДД.ММ) Время(ЧЧ:ММ)\n" +
		"Пример: бот напоминание Совещание 25.12 14:30"

	txtHelpMessage = `ℹ️ Помощь по использованию бота

📝 Формат даты: ДД.ММ (например: 25.12)
⏰ Формат времени: ЧЧ:ММ (например: 14:30)

🔁 Типы повторения:
• ❌ Не повторять - одноразовое напоминание
• 🔄 Каждый день - каждый день в это время
• 📅 Каждую неделю - каждую неделю
• 🎄 Каждый год - каждый год
• 📆 Дни недели - каждый указанный день

📌 Советы:
• Для быстрого добавления: /add Текст Дата Время
• Пример: /add Встреча 25.12 14:30
• Все данные сохраняются в таблицу

👥 Команды в группе:
• "бот помощь" - показать справку
• "бот список" - показать все напоминания
• "бот напоминание Текст Дата Время" - добавить напоминание`

	fmtWelcome = `👋 Привет! Я бот для напоминаний.

✨ Что я умею:
• Сохранять напоминания в таблицу
• Показывать и очищать сохранённые напоминания

📋 Доступные команды:
/start - показать это сообщение
/add - добавить новое напоминание
/list - посмотреть все напоминания
/del - удалить напоминание
/help - помощь
/test - тестовая отправка в группу

📊 Таблица:
%s

💬 Группа для напоминаний:
ID: %d

➕ Быстрое добавление:
/add Текст Дата(ДД.ММ) Время(ЧЧ:ММ)

🎯 Пример:
/add Совещание 25.12 14:30

⚠️ Автоматическая отправка напоминаний в срок пока не настроена:
я только сохраняю, показываю и очищаю записи.`

	fmtQuickAddSummary = "✅ Быстрое добавление:\n📝 Текст: %s\n📅 Дата: %s\n⏰ Время: %s\n\n" + txtChooseRepeat
	fmtMentionSummary  = "✅ Напоминание:\n📝 Текст: %s\n📅 Дата: %s\n⏰ Время: %s\n\n" + txtChooseRepeat
	fmtDialogSummary   = "📝 Текст: %s\n📅 Дата: %s\n⏰ Время: %s\n\n" + txtChooseRepeat

	fmtSaved = `✅ Напоминание сохранено!

📝 Текст: %s
📅 Дата: %s
⏰ Время: %s
🔁 Повторение: %s
👤 Добавил: %s

📊 Сохранено в строку #%d

⚠️ Внимание: автоматическая отправка в группу не настроена.
📌 Напоминание сохранено в таблицу, но само не отправится.`

	fmtUnknownMention = "🤔 Не понял команду: %s"
	fmtDelNotFound    = "❌ Строка #%d не найдена"
	fmtDelDone        = "✅ Напоминание в строке #%d очищено"
	fmtTestMessage    = "🧪 Тестовое сообщение от бота!\n📅 Дата: %s\n👤 От: %s"
	fmtListEntry      = "%d. %s | %s %s | %s\n   👤 %s | 📅 %s\n\n"
)
