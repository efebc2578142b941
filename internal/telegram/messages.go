package telegram

import (
	"fmt"

	"jokerbot/internal/journal"
)

// Reply texts, kept in French to match the community the bot serves.

// #region command-texts
const greetingMessage = `🎭 Salut tout le monde ! 👋

Je suis le bot unique de Joker pour les 3k développeurs ! 🚀

Je suis là pour vous accompagner dans vos projets de développement.
Tapez /help pour voir mes commandes disponibles.

Heureux de rejoindre ce canal ! 🎉`

const welcomeMessage = `👋 Bienvenue dans la communauté des développeurs !

Je suis Joker, votre bot assistant pour ce groupe de 3K développeurs.

Commandes disponibles :
• /help - Afficher l'aide
• /about - À propos du bot
• /dev - Informations pour développeurs
• /stats - Statistiques des prédictions

🎯 Système de prédiction de cartes automatique :
Le bot analyse automatiquement vos messages de jeu et fait des prédictions quand il détecte 3 cartes différentes !`

const helpMessage = `🎭 Aide - Bot de Joker

Commandes disponibles :
• /start - Démarrer l'interaction avec le bot
• /help - Afficher ce message d'aide
• /about - En savoir plus sur le bot
• /dev - Informations sur le développeur
• /stats - Afficher les statistiques de prédiction

Fonctionnalités :
✅ Salue automatiquement dans les canaux
🎯 Prédit les jeux avec 3 cartes différentes
📊 Vérifie les prédictions automatiquement
⚡ Détecte les messages modifiés`

const aboutMessage = `🎭 À propos du Bot de Joker

🤖 Nom : Bot de Joker
🎯 Public : 3k développeurs
🌟 Version : 2.0

Fonctionnalités :
✅ Salutation automatique dans les canaux
✅ Commandes interactives
✅ Interface en français
✅ Système de prédiction de cartes automatique

Merci d'utiliser mon bot ! 💙`

const devMessage = `👨‍💻 Informations Développeur

Spécialement conçu pour : 3k développeurs

🛠️ Stack technique :
• Go
• API Telegram Bot
• SQLite

🚀 Mission : Faciliter le travail des développeurs

Merci pour votre confiance ! 🎭`

const privateChatReply = `🎭 Salut ! Je suis le bot de Joker.
Utilisez /help pour voir mes commandes disponibles.

Ajoutez-moi à un canal pour que je puisse saluer tout le monde ! 👋`

const rateLimitedReply = "⏰ Veuillez patienter avant d'envoyer une autre commande."

// #endregion command-texts

// #region stats-text
// formatStats renders the /stats reply from journal aggregates.
func formatStats(s journal.Stats) string {
	return fmt.Sprintf(`📊 Statistiques de Prédiction

🎯 Total des prédictions : %d
✅ Correctes : %d
❌ Incorrectes : %d
🚫 Échouées : %d
⌛ En attente : %d
📈 Précision : %.1f%%`,
		s.Total, s.Correct, s.Incorrect, s.Failed, s.Pending, s.Accuracy)
}

// #endregion stats-text
