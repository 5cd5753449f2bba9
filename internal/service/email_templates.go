package service

import (
	"fmt"
	"strings"
)

func goalCreatedEmailTemplate(smartGoal string, dailyTasks []string, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Your new SMART goal on %s", appName)

	var tasks strings.Builder
	for _, task := range dailyTasks {
		fmt.Fprintf(&tasks, "- %s\n", task)
	}

	body := fmt.Sprintf(`Your goal is set:

%s

Your daily tasks:
%s
Check them off each day to build your streak:
%s

Best,
The %s Team`, smartGoal, tasks.String(), dashboardURL, appName)

	return subject, body
}
