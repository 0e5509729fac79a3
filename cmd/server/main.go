// @title         resumeflow API
// @version       1.0
// @description   Сервис загрузки резюме: извлечение текста, структурирование полей через LLM и хранение записей, плюс LinkedIn OAuth и скрейпинг профиля.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
package main

import (
	_ "github.com/artem13815/resumeflow/docs"
)

func main() {
	Execute()
}
